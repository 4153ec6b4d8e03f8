package responses

import "time"

type PersonalDetails struct {
	Surname        string `json:"surname"`
	OtherNames     string `json:"otherNames"`
	DateOfBirth    string `json:"dateOfBirth"`
	Age            int    `json:"age"`
	Occupation     string `json:"occupation"`
	MaritalStatus  string `json:"maritalStatus"`
	ContactAddress string `json:"contactAddress"`
	PhoneNumber    string `json:"phoneNumber"`
	EmailAddress   string `json:"emailAddress"`
	Ethnicity      string `json:"ethnicity"`
	Gender         string `json:"gender"`
}

type NextOfKin struct {
	ID string `json:"id"`
	PersonalDetails
	RelationshipToPatient string `json:"relationshipToPatient"`
}

type Patient struct {
	ID string `json:"id"`
	PersonalDetails
	RegistrationDate time.Time  `json:"registrationDate"`
	VerificationCode string     `json:"verificationCode"`
	NextOfKinID      string     `json:"nextOfKinId"`
	NextOfKin        *NextOfKin `json:"nextOfKin,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
