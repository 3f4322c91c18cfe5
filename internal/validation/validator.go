package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the dashboard's custom
// tags registered.
type Validator struct {
	validate *validator.Validate
	catalog  models.FilterLabelCatalog
}

func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator built with the default label
// catalog.
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator(models.DefaultFilterLabelCatalog())
	})
	return instance
}

// NewValidator registers:
//
//	br_date           dd/mm/yyyy calendar date
//	transaction_type  deposit or withdrawal, by key or display label
//	filter_dimension  one of the filterable field names
//
// Field names in errors follow the json tag.
func NewValidator(catalog models.FilterLabelCatalog) *Validator {
	v := &Validator{validate: validator.New(), catalog: catalog}

	_ = v.validate.RegisterValidation("br_date", validateBrazilianDate)
	_ = v.validate.RegisterValidation("transaction_type", v.validateTransactionType)
	_ = v.validate.RegisterValidation("filter_dimension", validateFilterDimension)

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func validateBrazilianDate(fl validator.FieldLevel) bool {
	_, err := services.ParseBrazilianDate(fl.Field().String(), time.UTC)
	return err == nil
}

func (v *Validator) validateTransactionType(fl validator.FieldLevel) bool {
	key := v.catalog.Resolve(models.DimensionTransactionType, fl.Field().String())
	_, err := models.ParseTransactionType(key)
	return err == nil
}

func validateFilterDimension(fl validator.FieldLevel) bool {
	return models.FilterDimension(fl.Field().String()).IsValid()
}
