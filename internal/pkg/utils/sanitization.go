package utils

import (
	"registration-service/internal/pkg/dto/requests"
	"strings"
)

func trimOptional(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func lowerOptional(value *string) {
	if value != nil {
		*value = strings.ToLower(*value)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpdatePasswordRequest(input *requests.UpdatePassword) {
	input.CurrentPassword = strings.TrimSpace(input.CurrentPassword)
	input.NewPassword = strings.TrimSpace(input.NewPassword)
}

func SanitizeCreateAccountRequest(input *requests.CreateAccount) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeSendRegistrationLinkRequest(input *requests.SendRegistrationLink) {
	input.ContactMethod = strings.ToLower(strings.TrimSpace(input.ContactMethod))
	input.ContactValue = strings.TrimSpace(input.ContactValue)
	if input.ContactMethod == "email" {
		input.ContactValue = strings.ToLower(input.ContactValue)
	}
}

func SanitizePersonalDetails(input *requests.PersonalDetails) {
	if input == nil {
		return
	}
	input.Surname = strings.TrimSpace(input.Surname)
	input.OtherNames = strings.TrimSpace(input.OtherNames)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Occupation = strings.TrimSpace(input.Occupation)
	input.MaritalStatus = strings.TrimSpace(input.MaritalStatus)
	input.ContactAddress = strings.TrimSpace(input.ContactAddress)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.EmailAddress = strings.ToLower(strings.TrimSpace(input.EmailAddress))
	input.Ethnicity = strings.TrimSpace(input.Ethnicity)
	input.Gender = strings.TrimSpace(input.Gender)
}

func SanitizeSubmitRegistrationRequest(input *requests.SubmitRegistration) {
	input.Token = strings.TrimSpace(input.Token)
	SanitizePersonalDetails(input.Patient)
	if input.NextOfKin != nil {
		SanitizePersonalDetails(&input.NextOfKin.PersonalDetails)
		input.NextOfKin.RelationshipToPatient = strings.TrimSpace(input.NextOfKin.RelationshipToPatient)
	}
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimOptional(input.Surname)
	trimOptional(input.OtherNames)
	trimOptional(input.DateOfBirth)
	trimOptional(input.Occupation)
	trimOptional(input.MaritalStatus)
	trimOptional(input.ContactAddress)
	trimOptional(input.PhoneNumber)
	trimOptional(input.EmailAddress)
	lowerOptional(input.EmailAddress)
	trimOptional(input.Ethnicity)
	trimOptional(input.Gender)
}

func SanitizeVerificationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
