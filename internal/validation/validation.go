// Package validation wraps go-playground/validator to turn struct tag
// violations into the per-field error lists the API returns.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/wayfarerhq/wayfarer-backend/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Report the json field name, not the Go field name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its struct tags and returns a ValidationFailed
// AppError carrying one message per failed field, or nil.
func Struct(v interface{}) *apperrors.AppError {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ValidationFailed("Invalid request payload", err.Error())
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperrors.ValidationFailedFields("Validation failed", fields)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
