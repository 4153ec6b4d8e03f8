package utils

import (
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
)

func MapPersonalDetailsRequestToModel(req *requests.PersonalDetails) (models.PersonalDetails, error) {
	dateOfBirth, err := ParseDate(req.DateOfBirth)
	if err != nil {
		return models.PersonalDetails{}, exceptions.ErrInputValidation(err)
	}

	var age int
	if req.Age != nil {
		age = *req.Age
	}

	return models.PersonalDetails{
		Surname:        req.Surname,
		OtherNames:     req.OtherNames,
		DateOfBirth:    dateOfBirth,
		Age:            age,
		Occupation:     req.Occupation,
		MaritalStatus:  req.MaritalStatus,
		ContactAddress: req.ContactAddress,
		PhoneNumber:    req.PhoneNumber,
		EmailAddress:   req.EmailAddress,
		Ethnicity:      req.Ethnicity,
		Gender:         req.Gender,
	}, nil
}

func MapSubmitRegistrationRequestToPayload(req *requests.SubmitRegistration) (*models.RegistrationPayload, error) {
	patient, err := MapPersonalDetailsRequestToModel(req.Patient)
	if err != nil {
		return nil, err
	}

	nextOfKin, err := MapPersonalDetailsRequestToModel(&req.NextOfKin.PersonalDetails)
	if err != nil {
		return nil, err
	}

	return &models.RegistrationPayload{
		Patient: patient,
		NextOfKin: models.NextOfKinDetails{
			PersonalDetails:       nextOfKin,
			RelationshipToPatient: req.NextOfKin.RelationshipToPatient,
		},
	}, nil
}

// MapUpdatePatientRequestToModel keeps only the fields present in req, keyed
// by their stored field names.
func MapUpdatePatientRequestToModel(req *requests.UpdatePatient) (models.PatientUpdate, error) {
	update := models.PatientUpdate{}

	setString := func(key string, value *string) {
		if value != nil {
			update[key] = *value
		}
	}

	setString("surname", req.Surname)
	setString("otherNames", req.OtherNames)
	setString("occupation", req.Occupation)
	setString("maritalStatus", req.MaritalStatus)
	setString("contactAddress", req.ContactAddress)
	setString("phoneNumber", req.PhoneNumber)
	setString("emailAddress", req.EmailAddress)
	setString("ethnicity", req.Ethnicity)
	setString("gender", req.Gender)

	if req.Age != nil {
		update["age"] = *req.Age
	}

	if req.DateOfBirth != nil {
		dateOfBirth, err := ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		update["dateOfBirth"] = dateOfBirth
	}

	return update, nil
}
