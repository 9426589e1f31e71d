package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator with the score-request rules registered
func New() *CustomValidator {
	v := validator.New()
	// Duration is optional but must not be negative when present.
	_ = v.RegisterValidation("nonneg", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() >= 0
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
