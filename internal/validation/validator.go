package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation failure, serialized as-is
// into 400 response bodies.
type FieldError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// UserValidator wraps go-playground/validator and implements echo.Validator.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "required" accepts whitespace-only strings, so names get their own rule.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Report json property names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserValidator{validate: v}
}

// Validate implements echo.Validator.
func (uv *UserValidator) Validate(i interface{}) error {
	return uv.validate.Struct(i)
}

// FieldErrors converts a validation failure into the error list returned
// to clients.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{ErrorMessage: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			PropertyName: fe.Field(),
			ErrorMessage: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
