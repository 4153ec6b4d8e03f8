package models

type NotificationData struct {
	RegistrationLink   string
	LinkExpiresInHours int
	VerificationCode   string
}
