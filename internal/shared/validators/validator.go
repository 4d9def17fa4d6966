package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ServerTimeLayout is the layout of serverTime values in access log records.
const ServerTimeLayout = "2006-01-02 15:04:05"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a validator with the custom tags used across the service:
//
//	servertime: string in ServerTimeLayout
//	day:        string in 2006-01-02
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation("servertime", layoutValidation(ServerTimeLayout))
	_ = v.RegisterValidation("day", layoutValidation(time.DateOnly))
	return v
}

func layoutValidation(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}
