package models

import "time"

type PersonalDetails struct {
	Surname        string    `bson:"surname" json:"surname"`
	OtherNames     string    `bson:"otherNames" json:"otherNames"`
	DateOfBirth    time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Age            int       `bson:"age" json:"age"`
	Occupation     string    `bson:"occupation" json:"occupation"`
	MaritalStatus  string    `bson:"maritalStatus" json:"maritalStatus"`
	ContactAddress string    `bson:"contactAddress" json:"contactAddress"`
	PhoneNumber    string    `bson:"phoneNumber" json:"phoneNumber"`
	EmailAddress   string    `bson:"emailAddress" json:"emailAddress"`
	Ethnicity      string    `bson:"ethnicity" json:"ethnicity"`
	Gender         string    `bson:"gender" json:"gender"`
}

type NextOfKinDetails struct {
	PersonalDetails       `bson:",inline"`
	RelationshipToPatient string `bson:"relationshipToPatient" json:"relationshipToPatient"`
}

type NextOfKin struct {
	ID               string `bson:"_id,omitempty"`
	NextOfKinDetails `bson:",inline"`
	TimeModel        `bson:",inline"`
}

type Patient struct {
	ID               string `bson:"_id,omitempty"`
	PersonalDetails  `bson:",inline"`
	RegistrationDate time.Time `bson:"registrationDate"`
	VerificationCode string    `bson:"verificationCode,omitempty"`
	NextOfKinID      string    `bson:"nextOfKinId"`
	TimeModel        `bson:",inline"`
}

// PatientUpdate holds the subset of patient fields a partial update sets.
type PatientUpdate map[string]interface{}
