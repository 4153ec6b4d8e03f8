package contracts

import (
	"context"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"time"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patientID string, update models.PatientUpdate, updatedAt time.Time) (*models.Patient, error)
	VerificationCodeLookup
}

type NextOfKinRepository interface {
	Create(ctx context.Context, nextOfKin *models.NextOfKin) (string, error)
	FindByID(ctx context.Context, nextOfKinID string) (*models.NextOfKin, error)
}

type PatientUsecase interface {
	CreateRegistration(ctx context.Context, payload *models.RegistrationPayload, verificationCode string) (*models.Patient, *models.NextOfKin, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
}
