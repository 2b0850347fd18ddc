package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usPhoneRegex = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// RegisterCustomValidations registers the domain rules used by the request
// schemas on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("us_phone", isUSPhoneNumber); err != nil {
		return err
	}
	// Stricter than the builtin "email": requires a dotted domain.
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// Canonical phone format is ###-###-####. Earlier revisions accepted bare
// digit strings; that variant is superseded.
func isUSPhoneNumber(fl validator.FieldLevel) bool {
	return usPhoneRegex.MatchString(fl.Field().String())
}
