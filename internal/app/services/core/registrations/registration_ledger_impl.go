package registrations

import (
	"context"
	"errors"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// registrationLedger owns the ticket lifecycle: issued, then consumed once,
// or expired once expiresAt has passed.
type registrationLedger struct {
	Repository    contracts.RegistrationRepository
	CodeGenerator contracts.CodeGenerator
	LinkTTL       time.Duration
	CodeTTL       time.Duration
	Log           *zap.Logger
	now           func() time.Time
}

func NewRegistrationLedger(
	repository contracts.RegistrationRepository,
	codeGenerator contracts.CodeGenerator,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RegistrationLedger {
	return &registrationLedger{
		Repository:    repository,
		CodeGenerator: codeGenerator,
		LinkTTL:       time.Duration(internalConfig.Registration.LinkExpiredTimeInHours) * time.Hour,
		CodeTTL:       time.Duration(internalConfig.Registration.VerificationCodeExpiredTimeInDays) * 24 * time.Hour,
		Log:           logger,
		now:           time.Now,
	}
}

func (l *registrationLedger) Issue(ctx context.Context, contactMethod, contactValue string) (*models.RegistrationTicket, error) {
	if !utils.IsValidContactMethod(contactMethod) {
		return nil, exceptions.ErrInvalidContactMethod(nil)
	}
	if strings.TrimSpace(contactValue) == "" {
		return nil, exceptions.ErrInputValidation(errors.New(constvars.ErrClientContactValueRequired))
	}

	token, err := l.CodeGenerator.MintToken()
	if err != nil {
		return nil, exceptions.ErrGenerateRandom(err)
	}

	now := l.now()
	ticket := &models.RegistrationTicket{
		Token:         token,
		ContactMethod: contactMethod,
		ContactValue:  contactValue,
		IsUsed:        false,
		ExpiresAt:     now.Add(l.LinkTTL),
	}
	ticket.SetCreatedAtUpdatedAt(now)

	ticket.ID, err = l.Repository.Insert(ctx, ticket)
	if err != nil {
		l.Log.Error("registrationLedger.Issue error inserting ticket",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return ticket, nil
}

func (l *registrationLedger) Validate(ctx context.Context, token string) (*models.RegistrationTicket, error) {
	now := l.now()
	ticket, err := l.Repository.FindValidByToken(ctx, token, now)
	if err != nil {
		return nil, err
	}
	if ticket == nil || !ticket.IsValidAt(now) {
		return nil, exceptions.ErrRegistrationLinkInvalidOrExpired(nil)
	}
	return ticket, nil
}

func (l *registrationLedger) Consume(ctx context.Context, token string, payload *models.RegistrationPayload, verificationCode string) (*models.RegistrationTicket, error) {
	now := l.now()
	ticket, err := l.Repository.ConsumeByToken(ctx, &models.ConsumeRequest{
		Token:            token,
		Payload:          payload,
		VerificationCode: verificationCode,
		Now:              now,
		CodeExpiresAt:    now.Add(l.CodeTTL),
	})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, exceptions.ErrRegistrationLinkInvalidOrExpired(nil)
	}
	return ticket, nil
}

func (l *registrationLedger) LookupByVerificationCode(ctx context.Context, code string) (*models.RegistrationTicket, error) {
	now := l.now()
	ticket, err := l.Repository.FindByVerificationCode(ctx, code, now)
	if err != nil {
		return nil, err
	}
	if ticket == nil || !ticket.IsCodeValidAt(now) {
		return nil, exceptions.ErrRegistrationCodeNotFound(nil)
	}
	return ticket, nil
}

func (l *registrationLedger) LinkPatient(ctx context.Context, ticketID, patientID string) error {
	return l.Repository.SetPatientID(ctx, ticketID, patientID, l.now())
}

// RedeemVerificationCode is idempotent: redeeming an already redeemed code
// returns the ticket with its original redemption time.
func (l *registrationLedger) RedeemVerificationCode(ctx context.Context, code string) (*models.RegistrationTicket, error) {
	ticket, err := l.LookupByVerificationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if ticket.CodeRedeemedAt != nil {
		return ticket, nil
	}

	redeemed, err := l.Repository.MarkCodeRedeemed(ctx, code, l.now())
	if err != nil {
		return nil, err
	}
	if redeemed == nil {
		// lost a race with another redemption
		return l.LookupByVerificationCode(ctx, code)
	}
	return redeemed, nil
}
