package patients

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository   contracts.PatientRepository
	NextOfKinRepository contracts.NextOfKinRepository
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	nextOfKinRepository contracts.NextOfKinRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:   patientRepository,
		NextOfKinRepository: nextOfKinRepository,
		Log:                 logger,
		now:                 time.Now,
	}
}

// CreateRegistration writes the next of kin before the patient that
// references it. A failed patient insert leaves the next of kin behind.
func (uc *patientUsecase) CreateRegistration(ctx context.Context, payload *models.RegistrationPayload, verificationCode string) (*models.Patient, *models.NextOfKin, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreateRegistration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.now()

	nextOfKin := &models.NextOfKin{NextOfKinDetails: payload.NextOfKin}
	nextOfKin.SetCreatedAtUpdatedAt(now)

	var err error
	nextOfKin.ID, err = uc.NextOfKinRepository.Create(ctx, nextOfKin)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateRegistration error creating next of kin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	patient := &models.Patient{
		PersonalDetails:  payload.Patient,
		RegistrationDate: now,
		VerificationCode: verificationCode,
		NextOfKinID:      nextOfKin.ID,
	}
	patient.SetCreatedAtUpdatedAt(now)

	patient.ID, err = uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateRegistration error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("next_of_kin_id", nextOfKin.ID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	uc.Log.Info("patientUsecase.CreateRegistration succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nextOfKin, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return uc.populate(ctx, patient)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	update, err := utils.MapUpdatePatientRequestToModel(request)
	if err != nil {
		return nil, err
	}

	if len(update) == 0 {
		return uc.GetPatientByID(ctx, patientID)
	}

	patient, err := uc.PatientRepository.Update(ctx, patientID, update, uc.now())
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "patient_updated", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAccountIDKey, utils.GetAccountID(ctx)),
		zap.Int("field_count", len(update)),
	)
	return uc.populate(ctx, patient)
}

func (uc *patientUsecase) populate(ctx context.Context, patient *models.Patient) (*responses.Patient, error) {
	var nextOfKin *models.NextOfKin
	if patient.NextOfKinID != "" {
		var err error
		nextOfKin, err = uc.NextOfKinRepository.FindByID(ctx, patient.NextOfKinID)
		if err != nil {
			return nil, err
		}
	}
	return utils.MapPatientToResponse(patient, nextOfKin), nil
}
