// Package service implements the application's business logic on top of
// the store and the analytics packages.
package service

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/resenia/resenia-server/internal/errors"
)

// validate is a shared validator instance for request validation.
var validate = func() *validator.Validate {
	v := validator.New()
	// Use JSON tag names for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := range len(name) {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})
	return v
}()

// formatValidationError converts validator errors into caller-facing
// validation errors.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if apperrors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				return apperrors.Validationf("%s is required", field)
			case "email":
				return apperrors.Validationf("%s must be a valid email address", field)
			case "min":
				return apperrors.Validationf("%s must be at least %s characters", field, e.Param())
			case "max":
				return apperrors.Validationf("%s exceeds maximum length of %s characters", field, e.Param())
			case "oneof":
				return apperrors.Validationf("%s must be one of: %s", field, e.Param())
			default:
				return apperrors.Validationf("%s is invalid", field)
			}
		}
	}
	return err
}
