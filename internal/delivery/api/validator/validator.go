// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"pawtrack/internal/domain/entity"
	"pawtrack/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New builds the request validator with the provider-specific tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// dayofweek accepts a weekday name in any letter case
	_ = v.RegisterValidation("dayofweek", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDayOfWeek(fl.Field().String())

		return err == nil
	})

	// hhmm accepts a 24-hour "HH:MM" time of day
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseTimeOfDay(fl.Field().String())

		return err == nil
	})

	// providerrole accepts OWNER or MODERATOR in any letter case
	_ = v.RegisterValidation("providerrole", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseProviderRole(fl.Field().String())

		return err == nil
	})

	_ = v.RegisterValidation("membership", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseMembership(fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validator: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FieldErrors flattens validation errors into field -> failed tag pairs for the error details.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		// Drop the root struct name: "createProviderRequest.Users[0].Role" -> "Users[0].Role"
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = fe.Tag()
	}

	return fields
}
