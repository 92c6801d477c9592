package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wayfarerhq/wayfarer-backend/config"
	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
	"github.com/wayfarerhq/wayfarer-backend/logger"
)

// Claims represents the expected claims in an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and stores the verified identity
// in the gin context. Requests without a verifiable identity are rejected
// with 401 before any handler runs.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			_ = c.Error(apperrors.AuthenticationFailed("Authorization required"))
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := validateToken(token, cfg.JwtSecretKey)
		if err != nil {
			log.Warnw("Invalid access token",
				"error", err,
				"path", c.Request.URL.Path,
			)
			_ = c.Error(apperrors.AuthenticationFailed("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), claims.Subject)
		if claims.Email != "" {
			c.Set(string(UserEmailKey), claims.Email)
			log.Debugw("Authenticated request",
				"user_id", claims.Subject,
				"email", logger.MaskEmail(claims.Email),
			)
		}

		c.Next()
	}
}

func validateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject claim")
	}
	return claims, nil
}
