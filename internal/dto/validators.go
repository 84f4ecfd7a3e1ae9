package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs the custom decimal validators referenced by the
// binding tags in this package on gin's validator engine. Must be called once
// during startup, before any request is bound.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine type %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("decimalgt0", decimalGreaterThanZero); err != nil {
		return fmt.Errorf("failed to register decimalgt0 validation: %w", err)
	}
	if err := v.RegisterValidation("decimalgte0", decimalNonNegative); err != nil {
		return fmt.Errorf("failed to register decimalgte0 validation: %w", err)
	}
	return nil
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThan(decimal.Zero)
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThanOrEqual(decimal.Zero)
}
