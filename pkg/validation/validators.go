package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Accepted address shape: ASCII local part, dotted domain, TLD of at least
// two letters. Deliberately narrower than RFC 5322; the built-in `email`
// tag admits addresses this service rejects.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates the contact form email format.
func ContactEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
