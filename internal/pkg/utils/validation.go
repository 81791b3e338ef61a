package utils

import (
	"medifind-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	digits := NormalizePhoneDigits(fl.Field().String())
	if !regexp.MustCompile(constvars.RegexDigitsOnly).MatchString(digits) {
		return false
	}
	return ValidateInternationalPhoneDigits(digits) == nil
}
