package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
