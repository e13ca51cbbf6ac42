package lib

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator : Echo validator backed by go-playground/validator
type CustomValidator struct {
	Validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}
