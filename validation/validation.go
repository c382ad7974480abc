// Package validation contains custom validation functions for the application to use for input validation.
package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tags under which the custom validators are registered.
const (
	FieldTag   = "fieldValidator"
	IntegerTag = "integerValidator"
)

// New returns a validator with the custom validators registered.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation(FieldTag, FieldValidator)
	validate.RegisterValidation(IntegerTag, IntegerValidator)
	return validate
}

// FieldValidator is a validation function that checks if the field value is empty.
// It returns true if the field value contains anything other than whitespace, and false otherwise.
func FieldValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// IntegerValidator checks that the field holds a base 10 integer that fits in an int64.
// Surrounding whitespace is ignored. Fractions and exponents are rejected.
func IntegerValidator(fl validator.FieldLevel) bool {
	_, err := ParseInteger(fl.Field().String())
	return err == nil
}

// ParseInteger parses s the same way IntegerValidator checks it.
func ParseInteger(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
