package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var frenchPostalCode = regexp.MustCompile(`^(?:0[1-9]|[1-8]\d|9[0-8])\d{3}$`)

// PostalCodeValidation validates a French postal code (five digits, metropolitan and overseas departments).
func PostalCodeValidation(fl validator.FieldLevel) bool {
	return frenchPostalCode.MatchString(fl.Field().String())
}
