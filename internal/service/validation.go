package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// firstInvalid maps the first failing field of a validation result to its
// caller-facing error. Fields are reported in declaration order.
func firstInvalid(err error, byField map[string]error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if mapped, ok := byField[fe.StructField()]; ok {
			return mapped
		}
	}
	return err
}
