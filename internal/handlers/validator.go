package handlers

import (
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator adapts the shared validation rules to echo.
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
