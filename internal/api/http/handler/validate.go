package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validationMessage returns the message for the first failing field, looked up
// by struct field name, or fallback when the field has no dedicated message.
func validationMessage(err error, messages map[string]string, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fallback
	}

	if msg, ok := messages[fieldErrs[0].StructField()]; ok {
		return msg
	}
	return fallback
}
