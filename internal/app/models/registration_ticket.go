package models

import "time"

type RegistrationPayload struct {
	Patient   PersonalDetails  `bson:"patient" json:"patient"`
	NextOfKin NextOfKinDetails `bson:"nextOfKin" json:"nextOfKin"`
}

type RegistrationTicket struct {
	ID               string               `bson:"_id,omitempty"`
	Token            string               `bson:"token"`
	ContactMethod    string               `bson:"contactMethod"`
	ContactValue     string               `bson:"contactValue"`
	Payload          *RegistrationPayload `bson:"payload,omitempty"`
	IsUsed           bool                 `bson:"isUsed"`
	ExpiresAt        time.Time            `bson:"expiresAt"`
	VerificationCode string               `bson:"verificationCode,omitempty"`
	CodeExpiresAt    *time.Time           `bson:"codeExpiresAt,omitempty"`
	PatientID        string               `bson:"patientId,omitempty"`
	CodeRedeemedAt   *time.Time           `bson:"codeRedeemedAt,omitempty"`
	TimeModel        `bson:",inline"`
}

func (t *RegistrationTicket) IsValidAt(now time.Time) bool {
	return !t.IsUsed && t.ExpiresAt.After(now)
}

func (t *RegistrationTicket) IsCodeValidAt(now time.Time) bool {
	return t.VerificationCode != "" && t.CodeExpiresAt != nil && t.CodeExpiresAt.After(now)
}

// ConsumeRequest is the data attached to a ticket when it is consumed.
type ConsumeRequest struct {
	Token            string
	Payload          *RegistrationPayload
	VerificationCode string
	Now              time.Time
	CodeExpiresAt    time.Time
}

// RegistrationArchive is the snapshot written to object storage after a
// successful submission.
type RegistrationArchive struct {
	TicketID         string               `json:"ticketId"`
	PatientID        string               `json:"patientId"`
	NextOfKinID      string               `json:"nextOfKinId"`
	ContactMethod    string               `json:"contactMethod"`
	VerificationCode string               `json:"verificationCode"`
	Payload          *RegistrationPayload `json:"payload"`
	SubmittedAt      time.Time            `json:"submittedAt"`
}
