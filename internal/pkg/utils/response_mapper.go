package utils

import (
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/responses"
)

func MapAccountToResponse(account *models.Account) *responses.Account {
	if account == nil {
		return nil
	}
	return &responses.Account{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func MapPersonalDetailsToResponse(details models.PersonalDetails) responses.PersonalDetails {
	return responses.PersonalDetails{
		Surname:        details.Surname,
		OtherNames:     details.OtherNames,
		DateOfBirth:    FormatDate(details.DateOfBirth),
		Age:            details.Age,
		Occupation:     details.Occupation,
		MaritalStatus:  details.MaritalStatus,
		ContactAddress: details.ContactAddress,
		PhoneNumber:    details.PhoneNumber,
		EmailAddress:   details.EmailAddress,
		Ethnicity:      details.Ethnicity,
		Gender:         details.Gender,
	}
}

func MapNextOfKinToResponse(nextOfKin *models.NextOfKin) *responses.NextOfKin {
	if nextOfKin == nil {
		return nil
	}
	return &responses.NextOfKin{
		ID:                    nextOfKin.ID,
		PersonalDetails:       MapPersonalDetailsToResponse(nextOfKin.PersonalDetails),
		RelationshipToPatient: nextOfKin.RelationshipToPatient,
	}
}

func MapPatientToResponse(patient *models.Patient, nextOfKin *models.NextOfKin) *responses.Patient {
	if patient == nil {
		return nil
	}
	return &responses.Patient{
		ID:               patient.ID,
		PersonalDetails:  MapPersonalDetailsToResponse(patient.PersonalDetails),
		RegistrationDate: patient.RegistrationDate,
		VerificationCode: patient.VerificationCode,
		NextOfKinID:      patient.NextOfKinID,
		NextOfKin:        MapNextOfKinToResponse(nextOfKin),
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}
