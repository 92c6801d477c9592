package middleware

// contextKey defines a type for context keys to avoid collisions.
type contextKey string

// Defines context keys used within the application middleware and handlers.
const (
	// UserIDKey is the context key for the authenticated user's ID (string).
	UserIDKey contextKey = "userID"
	// UserEmailKey is the context key for the authenticated user's email (string).
	UserEmailKey contextKey = "userEmail"
)
