package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for struct validation
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate performs struct validation
func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
