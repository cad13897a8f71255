// Package validator adapts the shared struct validator to echo.Validator.
package validator

import (
	domainerrors "resumeapp/internal/domain/errors"
	"resumeapp/internal/util"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator whose failures are VALIDATION_FAILED errors
// carrying "field: rule" details.
func New(validate *playground.Validate) echo.Validator {
	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(util.FormatValidationError(err))
	}

	return nil
}
