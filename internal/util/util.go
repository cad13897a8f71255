// Package util holds small helpers shared by the delivery and use case layers.
package util

import (
	"reflect"
	"strings"

	"resumeapp/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns the shared struct validator. Field names in errors
// follow the json tag so they match what clients sent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return lowerFirst(field.Name)
		default:
			return name
		}
	})

	return v
}

// FormatValidationError renders validator errors as "field: rule" pairs, for
// example "email: email; password: min=8". Other errors are returned as text.
func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+rule)
	}

	return strings.Join(parts, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
