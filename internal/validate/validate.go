package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newValidator()

// FieldErrors maps a field's json name to a human readable message. It
// implements error so services can hand it straight to
// [servererrors.ServerError.Errors].
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}

	return fmt.Sprintf(
		"validation failed on fields: %s",
		strings.Join(fields, ", "),
	)
}

// StructFields validates a struct's `validate` tags and returns nil or a
// [FieldErrors] describing every invalid field.
func StructFields(s any) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs[fieldErr.Field()] = messageForTag(fieldErr)
	}

	return fieldErrs
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names so field errors line up with request payloads
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(
			field.Tag.Get("json"),
			",",
			2,
		)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "oneof":
		return fmt.Sprintf(
			"Must be one of: %s",
			fieldErr.Param(),
		)
	case "min":
		return fmt.Sprintf(
			"Must be at least %s",
			fieldErr.Param(),
		)
	case "max":
		return fmt.Sprintf(
			"Must be at most %s",
			fieldErr.Param(),
		)
	case "gt":
		return fmt.Sprintf(
			"Must be greater than %s",
			fieldErr.Param(),
		)
	default:
		return "Invalid value"
	}
}
