package responses

import "time"

type RegistrationLinkSent struct {
	ContactMethod string    `json:"contactMethod"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type RegistrationLinkStatus struct {
	Valid         bool      `json:"valid"`
	ContactMethod string    `json:"contactMethod"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type RegistrationSubmitted struct {
	VerificationCode string `json:"verificationCode"`
	PatientID        string `json:"patientId"`
}

type RegistrationLookup struct {
	PatientID        string     `json:"patientId"`
	VerificationCode string     `json:"verificationCode"`
	CodeExpiresAt    time.Time  `json:"codeExpiresAt"`
	CodeRedeemedAt   *time.Time `json:"codeRedeemedAt,omitempty"`
	Patient          *Patient   `json:"patient,omitempty"`
	NextOfKin        *NextOfKin `json:"nextOfKin,omitempty"`
}
