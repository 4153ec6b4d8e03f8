package utils

import (
	"reflect"
	"regexp"
	"registration-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	nonDigitPattern = regexp.MustCompile(constvars.RegexNonDigit)
	emailPattern    = regexp.MustCompile(constvars.RegexEmail)
	tokenPattern    = regexp.MustCompile(constvars.RegexRegistrationToken)
	codePattern     = regexp.MustCompile(constvars.RegexVerificationCode)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("marital_status", validateMaritalStatus)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("contact_method", validateContactMethod)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("not_future", validateNotFutureDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidContactMethod(method string) bool {
	return method == constvars.ContactMethodEmail || method == constvars.ContactMethodSMS
}

func IsValidRegistrationToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// IsValidVerificationCode expects an already sanitized (uppercased) code.
func IsValidVerificationCode(code string) bool {
	return codePattern.MatchString(code)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateMaritalStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.MaritalStatusSingle,
		constvars.MaritalStatusMarried,
		constvars.MaritalStatusDivorced,
		constvars.MaritalStatusWidowed,
		constvars.MaritalStatusOther:
		return true
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.GenderMale,
		constvars.GenderFemale,
		constvars.GenderOther,
		constvars.GenderPreferNotToSay:
		return true
	}
	return false
}

func validateContactMethod(fl validator.FieldLevel) bool {
	return IsValidContactMethod(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	digits := nonDigitPattern.ReplaceAllString(fl.Field().String(), "")
	return len(digits) >= 7 && len(digits) <= 15
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	return !date.After(time.Now())
}
