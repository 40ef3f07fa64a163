package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to the JSON keys clients submit.
var fieldNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Subject": "subject",
	"Message": "message",
}

// reportOrder ranks failures when several fields are invalid at once:
// missing fields are reported before format errors, format errors before
// length limits. Within a phase, struct field order decides.
var reportOrder = []string{"required", "contact_email", "max"}

// FirstErrorMessage converts a validator error into the single
// client-facing message this API answers with.
func FirstErrorMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	for _, tag := range reportOrder {
		for _, e := range validationErrors {
			if e.Tag() == tag {
				return formatSingleError(e)
			}
		}
	}
	return formatSingleError(validationErrors[0])
}

func formatSingleError(e validator.FieldError) string {
	field := fieldNames[e.StructField()]
	if field == "" {
		field = strings.ToLower(e.StructField())
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "contact_email":
		return "Invalid email format"
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", title(field), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
