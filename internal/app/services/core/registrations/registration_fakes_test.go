package registrations

import (
	"context"
	"fmt"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
	"registration-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type inMemoryRegistrationRepository struct {
	mu      sync.Mutex
	tickets map[string]*models.RegistrationTicket
	nextID  int
}

func newInMemoryRegistrationRepository() *inMemoryRegistrationRepository {
	return &inMemoryRegistrationRepository{tickets: make(map[string]*models.RegistrationTicket)}
}

func cloneTicket(ticket *models.RegistrationTicket) *models.RegistrationTicket {
	copied := *ticket
	return &copied
}

func (r *inMemoryRegistrationRepository) Insert(ctx context.Context, ticket *models.RegistrationTicket) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("%024x", r.nextID)
	stored := cloneTicket(ticket)
	stored.ID = id
	r.tickets[id] = stored
	return id, nil
}

func (r *inMemoryRegistrationRepository) FindValidByToken(ctx context.Context, token string, now time.Time) (*models.RegistrationTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.Token == token && ticket.IsValidAt(now) {
			return cloneTicket(ticket), nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistrationRepository) ConsumeByToken(ctx context.Context, request *models.ConsumeRequest) (*models.RegistrationTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.Token == request.Token && ticket.IsValidAt(request.Now) {
			if r.codeClaimedLocked(request.VerificationCode) {
				return nil, exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("verificationCode %s already claimed", request.VerificationCode))
			}
			codeExpiresAt := request.CodeExpiresAt
			ticket.Payload = request.Payload
			ticket.IsUsed = true
			ticket.VerificationCode = request.VerificationCode
			ticket.CodeExpiresAt = &codeExpiresAt
			ticket.UpdatedAt = request.Now
			return cloneTicket(ticket), nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistrationRepository) FindByVerificationCode(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.VerificationCode == code && ticket.IsCodeValidAt(now) {
			return cloneTicket(ticket), nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistrationRepository) SetPatientID(ctx context.Context, ticketID, patientID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket, ok := r.tickets[ticketID]; ok {
		ticket.PatientID = patientID
		ticket.UpdatedAt = now
	}
	return nil
}

func (r *inMemoryRegistrationRepository) MarkCodeRedeemed(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.VerificationCode == code && ticket.IsCodeValidAt(now) && ticket.CodeRedeemedAt == nil {
			redeemedAt := now
			ticket.CodeRedeemedAt = &redeemedAt
			ticket.UpdatedAt = now
			return cloneTicket(ticket), nil
		}
	}
	return nil, nil
}

func (r *inMemoryRegistrationRepository) DeleteUnusedExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, ticket := range r.tickets {
		if !ticket.IsUsed && ticket.ExpiresAt.Before(cutoff) {
			delete(r.tickets, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *inMemoryRegistrationRepository) VerificationCodeExists(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.VerificationCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryRegistrationRepository) codeClaimedLocked(code string) bool {
	for _, ticket := range r.tickets {
		if ticket.VerificationCode == code {
			return true
		}
	}
	return false
}

func (r *inMemoryRegistrationRepository) byToken(token string) *models.RegistrationTicket {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.Token == token {
			return cloneTicket(ticket)
		}
	}
	return nil
}

// scriptedCodeGenerator hands out verification codes in order and repeats the
// last one once the script runs out.
type scriptedCodeGenerator struct {
	mu    sync.Mutex
	codes []string
	calls int
}

func (g *scriptedCodeGenerator) MintToken() (string, error) {
	return "", fmt.Errorf("scriptedCodeGenerator does not mint tokens")
}

func (g *scriptedCodeGenerator) MintVerificationCode(ctx context.Context, length int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	code := g.codes[len(g.codes)-1]
	if g.calls < len(g.codes) {
		code = g.codes[g.calls]
	}
	g.calls++
	return code, nil
}

type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) Notify(ctx context.Context, contactMethod, contactValue, templateKind string, data *models.NotificationData) error {
	args := m.Called(ctx, contactMethod, contactValue, templateKind, data)
	return args.Error(0)
}

type MockSendLinkThrottle struct {
	mock.Mock
}

func (m *MockSendLinkThrottle) Acquire(ctx context.Context, contactMethod, contactValue string) (bool, error) {
	args := m.Called(ctx, contactMethod, contactValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockSendLinkThrottle) Release(ctx context.Context, contactMethod, contactValue string) error {
	args := m.Called(ctx, contactMethod, contactValue)
	return args.Error(0)
}

type MockRegistrationArchiver struct {
	mock.Mock
}

func (m *MockRegistrationArchiver) Archive(ctx context.Context, archive *models.RegistrationArchive) error {
	args := m.Called(ctx, archive)
	return args.Error(0)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) CreateRegistration(ctx context.Context, payload *models.RegistrationPayload, verificationCode string) (*models.Patient, *models.NextOfKin, error) {
	args := m.Called(ctx, payload, verificationCode)
	var patient *models.Patient
	if v := args.Get(0); v != nil {
		patient = v.(*models.Patient)
	}
	var nextOfKin *models.NextOfKin
	if v := args.Get(1); v != nil {
		nextOfKin = v.(*models.NextOfKin)
	}
	return patient, nextOfKin, args.Error(2)
}

func (m *MockPatientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	if v := args.Get(0); v != nil {
		return v.(*responses.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	args := m.Called(ctx, patientID, request)
	if v := args.Get(0); v != nil {
		return v.(*responses.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}
