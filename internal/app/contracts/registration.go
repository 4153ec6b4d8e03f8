package contracts

import (
	"context"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"time"
)

// RegistrationRepository finders return nil, nil when nothing matches.
type RegistrationRepository interface {
	Insert(ctx context.Context, ticket *models.RegistrationTicket) (string, error)
	FindValidByToken(ctx context.Context, token string, now time.Time) (*models.RegistrationTicket, error)
	ConsumeByToken(ctx context.Context, request *models.ConsumeRequest) (*models.RegistrationTicket, error)
	FindByVerificationCode(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error)
	SetPatientID(ctx context.Context, ticketID, patientID string, now time.Time) error
	MarkCodeRedeemed(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error)
	DeleteUnusedExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
	VerificationCodeLookup
}

type RegistrationLedger interface {
	Issue(ctx context.Context, contactMethod, contactValue string) (*models.RegistrationTicket, error)
	Validate(ctx context.Context, token string) (*models.RegistrationTicket, error)
	Consume(ctx context.Context, token string, payload *models.RegistrationPayload, verificationCode string) (*models.RegistrationTicket, error)
	LookupByVerificationCode(ctx context.Context, code string) (*models.RegistrationTicket, error)
	LinkPatient(ctx context.Context, ticketID, patientID string) error
	RedeemVerificationCode(ctx context.Context, code string) (*models.RegistrationTicket, error)
}

type RegistrationUsecase interface {
	SendRegistrationLink(ctx context.Context, request *requests.SendRegistrationLink) (*responses.RegistrationLinkSent, error)
	VerifyRegistrationLink(ctx context.Context, token string) (*responses.RegistrationLinkStatus, error)
	SubmitRegistration(ctx context.Context, request *requests.SubmitRegistration) (*responses.RegistrationSubmitted, error)
	LookupVerificationCode(ctx context.Context, code string) (*responses.RegistrationLookup, error)
	RedeemVerificationCode(ctx context.Context, code string) (*responses.RegistrationLookup, error)
}

type SendLinkThrottle interface {
	Acquire(ctx context.Context, contactMethod, contactValue string) (bool, error)
	Release(ctx context.Context, contactMethod, contactValue string) error
}

type RegistrationArchiver interface {
	Archive(ctx context.Context, archive *models.RegistrationArchive) error
}
