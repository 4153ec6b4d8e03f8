package registrations

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type registrationUsecase struct {
	Ledger              contracts.RegistrationLedger
	CodeGenerator       contracts.CodeGenerator
	PatientUsecase      contracts.PatientUsecase
	NotificationGateway contracts.NotificationGateway
	SendLinkThrottle    contracts.SendLinkThrottle
	Archiver            contracts.RegistrationArchiver
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewRegistrationUsecase(
	ledger contracts.RegistrationLedger,
	codeGenerator contracts.CodeGenerator,
	patientUsecase contracts.PatientUsecase,
	notificationGateway contracts.NotificationGateway,
	sendLinkThrottle contracts.SendLinkThrottle,
	archiver contracts.RegistrationArchiver,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		Ledger:              ledger,
		CodeGenerator:       codeGenerator,
		PatientUsecase:      patientUsecase,
		NotificationGateway: notificationGateway,
		SendLinkThrottle:    sendLinkThrottle,
		Archiver:            archiver,
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 time.Now,
	}
}

func (uc *registrationUsecase) SendRegistrationLink(ctx context.Context, request *requests.SendRegistrationLink) (*responses.RegistrationLinkSent, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("registrationUsecase.SendRegistrationLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactMethodKey, request.ContactMethod),
	)

	if request.ContactMethod == constvars.ContactMethodEmail && !utils.IsValidEmail(request.ContactValue) {
		return nil, exceptions.ErrInputValidation(errors.New(constvars.ErrClientContactValueInvalidEmail))
	}

	acquired, err := uc.SendLinkThrottle.Acquire(ctx, request.ContactMethod, request.ContactValue)
	if err != nil {
		uc.Log.Error("registrationUsecase.SendRegistrationLink error acquiring cooldown",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		utils.LogSecurityEvent(uc.Log, "send_link_throttled", requestID, "low",
			zap.String(constvars.LoggingContactMethodKey, request.ContactMethod),
		)
		return nil, exceptions.ErrSendLinkTooFrequent(nil)
	}

	ticket, err := uc.Ledger.Issue(ctx, request.ContactMethod, request.ContactValue)
	if err != nil {
		uc.releaseThrottle(ctx, request)
		return nil, err
	}

	link := uc.buildRegistrationLink(ticket.Token)
	uc.Log.Debug("registrationUsecase.SendRegistrationLink link issued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTicketIDKey, ticket.ID),
		zap.String(constvars.LoggingRegistrationLink, link),
	)

	err = uc.NotificationGateway.Notify(ctx, ticket.ContactMethod, ticket.ContactValue, constvars.TemplateRegistrationLink, &models.NotificationData{
		RegistrationLink:   link,
		LinkExpiresInHours: uc.InternalConfig.Registration.LinkExpiredTimeInHours,
	})
	if err != nil {
		uc.Log.Error("registrationUsecase.SendRegistrationLink error delivering link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
		uc.releaseThrottle(ctx, request)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "registration_link_sent", requestID,
		zap.String(constvars.LoggingTicketIDKey, ticket.ID),
		zap.String(constvars.LoggingContactMethodKey, ticket.ContactMethod),
	)
	return &responses.RegistrationLinkSent{
		ContactMethod: ticket.ContactMethod,
		ExpiresAt:     ticket.ExpiresAt,
	}, nil
}

func (uc *registrationUsecase) VerifyRegistrationLink(ctx context.Context, token string) (*responses.RegistrationLinkStatus, error) {
	ticket, err := uc.Ledger.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &responses.RegistrationLinkStatus{
		Valid:         true,
		ContactMethod: ticket.ContactMethod,
		ExpiresAt:     ticket.ExpiresAt,
	}, nil
}

// consumeWithFreshCode mints a code and consumes the ticket with it. A
// concurrent submission can claim the same code between the uniqueness check
// and the write, in which case the unique index rejects it and a new code is
// minted.
func (uc *registrationUsecase) consumeWithFreshCode(ctx context.Context, token string, payload *models.RegistrationPayload) (*models.RegistrationTicket, string, error) {
	requestID := utils.GetRequestID(ctx)
	for attempt := 1; ; attempt++ {
		verificationCode, err := uc.CodeGenerator.MintVerificationCode(ctx, uc.InternalConfig.Registration.VerificationCodeLength)
		if err != nil {
			uc.Log.Error("registrationUsecase.SubmitRegistration error minting verification code",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, "", err
		}

		ticket, err := uc.Ledger.Consume(ctx, token, payload, verificationCode)
		if err == nil {
			return ticket, verificationCode, nil
		}
		if !exceptions.IsDuplicateKey(err) || attempt >= constvars.VerificationCodeClaimAttempts {
			return nil, "", err
		}
		uc.Log.Warn("registrationUsecase.SubmitRegistration verification code claimed concurrently, minting again",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("attempt", attempt),
		)
	}
}

// SubmitRegistration consumes the ticket before any record is written, so a
// replayed submission fails instead of creating a second patient.
func (uc *registrationUsecase) SubmitRegistration(ctx context.Context, request *requests.SubmitRegistration) (*responses.RegistrationSubmitted, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("registrationUsecase.SubmitRegistration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.Ledger.Validate(ctx, request.Token); err != nil {
		return nil, err
	}

	payload, err := utils.MapSubmitRegistrationRequestToPayload(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	ticket, verificationCode, err := uc.consumeWithFreshCode(ctx, request.Token, payload)
	if err != nil {
		return nil, err
	}

	patient, nextOfKin, err := uc.PatientUsecase.CreateRegistration(ctx, payload, verificationCode)
	if err != nil {
		uc.Log.Error("registrationUsecase.SubmitRegistration error creating patient records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.Ledger.LinkPatient(ctx, ticket.ID, patient.ID); err != nil {
		uc.Log.Warn("registrationUsecase.SubmitRegistration failed to link patient to ticket",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
	}

	archive := &models.RegistrationArchive{
		TicketID:         ticket.ID,
		PatientID:        patient.ID,
		NextOfKinID:      nextOfKin.ID,
		ContactMethod:    ticket.ContactMethod,
		VerificationCode: verificationCode,
		Payload:          payload,
		SubmittedAt:      uc.now(),
	}
	if err := uc.Archiver.Archive(ctx, archive); err != nil {
		uc.Log.Warn("registrationUsecase.SubmitRegistration failed to archive submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
	}

	err = uc.NotificationGateway.Notify(ctx, ticket.ContactMethod, ticket.ContactValue, constvars.TemplateRegistrationConfirmation, &models.NotificationData{
		VerificationCode: verificationCode,
	})
	if err != nil {
		uc.Log.Warn("registrationUsecase.SubmitRegistration failed to send confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, ticket.ID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, "registration_submitted", requestID,
		zap.String(constvars.LoggingTicketIDKey, ticket.ID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &responses.RegistrationSubmitted{
		VerificationCode: verificationCode,
		PatientID:        patient.ID,
	}, nil
}

func (uc *registrationUsecase) LookupVerificationCode(ctx context.Context, code string) (*responses.RegistrationLookup, error) {
	ticket, err := uc.Ledger.LookupByVerificationCode(ctx, utils.SanitizeVerificationCode(code))
	if err != nil {
		return nil, err
	}
	return uc.buildLookupResponse(ctx, ticket)
}

func (uc *registrationUsecase) RedeemVerificationCode(ctx context.Context, code string) (*responses.RegistrationLookup, error) {
	requestID := utils.GetRequestID(ctx)
	ticket, err := uc.Ledger.RedeemVerificationCode(ctx, utils.SanitizeVerificationCode(code))
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "verification_code_redeemed", requestID,
		zap.String(constvars.LoggingTicketIDKey, ticket.ID),
		zap.String(constvars.LoggingAccountIDKey, utils.GetAccountID(ctx)),
	)
	return uc.buildLookupResponse(ctx, ticket)
}

func (uc *registrationUsecase) buildLookupResponse(ctx context.Context, ticket *models.RegistrationTicket) (*responses.RegistrationLookup, error) {
	result := &responses.RegistrationLookup{
		PatientID:        ticket.PatientID,
		VerificationCode: ticket.VerificationCode,
		CodeRedeemedAt:   ticket.CodeRedeemedAt,
	}
	if ticket.CodeExpiresAt != nil {
		result.CodeExpiresAt = *ticket.CodeExpiresAt
	}

	if ticket.PatientID != "" {
		patient, err := uc.PatientUsecase.GetPatientByID(ctx, ticket.PatientID)
		if err != nil {
			return nil, err
		}
		result.Patient = patient
		result.NextOfKin = patient.NextOfKin
		return result, nil
	}

	// Ticket was consumed but never linked; fall back to the stored snapshot.
	if ticket.Payload != nil {
		result.Patient = utils.MapPatientToResponse(&models.Patient{
			PersonalDetails:  ticket.Payload.Patient,
			VerificationCode: ticket.VerificationCode,
		}, nil)
		result.NextOfKin = utils.MapNextOfKinToResponse(&models.NextOfKin{
			NextOfKinDetails: ticket.Payload.NextOfKin,
		})
	}
	return result, nil
}

func (uc *registrationUsecase) buildRegistrationLink(token string) string {
	frontendURL := strings.TrimRight(uc.InternalConfig.App.FrontendURL, "/")
	return fmt.Sprintf(constvars.AppRegistrationLinkFormat, frontendURL, url.PathEscape(token))
}

func (uc *registrationUsecase) releaseThrottle(ctx context.Context, request *requests.SendRegistrationLink) {
	if err := uc.SendLinkThrottle.Release(ctx, request.ContactMethod, request.ContactValue); err != nil {
		uc.Log.Warn("registrationUsecase.SendRegistrationLink failed to release cooldown",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
