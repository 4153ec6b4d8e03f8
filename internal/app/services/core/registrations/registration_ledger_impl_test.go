package registrations

import (
	"context"
	"errors"
	"registration-service/internal/app/config"
	"registration-service/internal/app/models"
	"registration-service/internal/app/services/shared/generator"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct {
	mu      sync.Mutex
	current time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{FrontendURL: "http://localhost:3000/"},
		Registration: config.AppRegistration{
			LinkExpiredTimeInHours:            24,
			VerificationCodeExpiredTimeInDays: 7,
			VerificationCodeLength:            8,
		},
	}
}

func setupLedger(t *testing.T) (*registrationLedger, *inMemoryRegistrationRepository, *clock) {
	t.Helper()
	repo := newInMemoryRegistrationRepository()
	c := &clock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	ledger := NewRegistrationLedger(repo, generator.NewCodeGenerator(repo), testInternalConfig(), zap.NewNop()).(*registrationLedger)
	ledger.now = c.Now
	return ledger, repo, c
}

func customStatus(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func samplePayload() *models.RegistrationPayload {
	return &models.RegistrationPayload{
		Patient: models.PersonalDetails{Surname: "Doe", OtherNames: "Jane", Age: 34},
		NextOfKin: models.NextOfKinDetails{
			PersonalDetails:       models.PersonalDetails{Surname: "Doe", OtherNames: "John", Age: 36},
			RelationshipToPatient: "Spouse",
		},
	}
}

func TestRegistrationLedger_Issue(t *testing.T) {
	ledger, repo, c := setupLedger(t)
	ctx := context.Background()

	t.Run("Stores Unused Ticket With 24h Expiry", func(t *testing.T) {
		ticket, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "jane@example.com")
		require.NoError(t, err)

		assert.Len(t, ticket.Token, 64)
		assert.False(t, ticket.IsUsed)
		assert.Nil(t, ticket.Payload)
		assert.Equal(t, c.Now().Add(24*time.Hour), ticket.ExpiresAt)
		assert.NotNil(t, repo.byToken(ticket.Token))
	})

	t.Run("Tokens Are Distinct", func(t *testing.T) {
		first, err := ledger.Issue(ctx, constvars.ContactMethodSMS, "+15550102000")
		require.NoError(t, err)
		second, err := ledger.Issue(ctx, constvars.ContactMethodSMS, "+15550102000")
		require.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)
	})

	t.Run("Rejects Unknown Contact Method", func(t *testing.T) {
		_, err := ledger.Issue(ctx, "fax", "12345")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
	})

	t.Run("Rejects Empty Contact Value", func(t *testing.T) {
		_, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "  ")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
	})
}

func TestRegistrationLedger_ValidateAndExpiry(t *testing.T) {
	ledger, _, c := setupLedger(t)
	ctx := context.Background()

	ticket, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "jane@example.com")
	require.NoError(t, err)

	validated, err := ledger.Validate(ctx, ticket.Token)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, validated.ID)

	_, err = ledger.Validate(ctx, "unknown-token")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))

	c.Advance(24*time.Hour + time.Second)
	_, err = ledger.Validate(ctx, ticket.Token)
	require.Error(t, err)

	_, err = ledger.Consume(ctx, ticket.Token, samplePayload(), "ABCD1234")
	require.Error(t, err, "expired ticket must not be consumable")
}

func TestRegistrationLedger_Consume(t *testing.T) {
	ledger, repo, c := setupLedger(t)
	ctx := context.Background()

	ticket, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "jane@example.com")
	require.NoError(t, err)

	consumed, err := ledger.Consume(ctx, ticket.Token, samplePayload(), "ABCD1234")
	require.NoError(t, err)
	assert.True(t, consumed.IsUsed)
	assert.Equal(t, "ABCD1234", consumed.VerificationCode)
	require.NotNil(t, consumed.CodeExpiresAt)
	assert.Equal(t, c.Now().Add(7*24*time.Hour), *consumed.CodeExpiresAt)
	require.NotNil(t, consumed.Payload)
	assert.Equal(t, "Spouse", consumed.Payload.NextOfKin.RelationshipToPatient)

	_, err = ledger.Consume(ctx, ticket.Token, samplePayload(), "WXYZ9876")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))
	assert.Equal(t, "ABCD1234", repo.byToken(ticket.Token).VerificationCode, "second consume must not overwrite the first")

	_, err = ledger.Validate(ctx, ticket.Token)
	assert.Error(t, err, "consumed ticket is no longer valid")
}

func TestRegistrationLedger_ConcurrentConsume(t *testing.T) {
	ledger, _, _ := setupLedger(t)
	ctx := context.Background()

	ticket, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "jane@example.com")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var successes int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Consume(ctx, ticket.Token, samplePayload(), "ABCD1234"); err == nil {
				atomic.AddInt32(&successes, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
}

func TestRegistrationLedger_VerificationCode(t *testing.T) {
	ledger, _, c := setupLedger(t)
	ctx := context.Background()

	ticket, err := ledger.Issue(ctx, constvars.ContactMethodSMS, "+15550102000")
	require.NoError(t, err)
	_, err = ledger.Consume(ctx, ticket.Token, samplePayload(), "ABCD1234")
	require.NoError(t, err)
	require.NoError(t, ledger.LinkPatient(ctx, ticket.ID, "patient-1"))

	found, err := ledger.LookupByVerificationCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "patient-1", found.PatientID)

	_, err = ledger.LookupByVerificationCode(ctx, "ZZZZ0000")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, customStatus(t, err))

	redeemed, err := ledger.RedeemVerificationCode(ctx, "ABCD1234")
	require.NoError(t, err)
	require.NotNil(t, redeemed.CodeRedeemedAt)
	firstRedemption := *redeemed.CodeRedeemedAt

	c.Advance(time.Hour)
	again, err := ledger.RedeemVerificationCode(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, firstRedemption, *again.CodeRedeemedAt)

	c.Advance(7 * 24 * time.Hour)
	_, err = ledger.LookupByVerificationCode(ctx, "ABCD1234")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, customStatus(t, err))

	_, err = ledger.RedeemVerificationCode(ctx, "ABCD1234")
	assert.Error(t, err)
}

// staleReadRepository returns tickets by token or code without checking
// state, like a lagging secondary read.
type staleReadRepository struct {
	*inMemoryRegistrationRepository
}

func (r *staleReadRepository) FindValidByToken(ctx context.Context, token string, now time.Time) (*models.RegistrationTicket, error) {
	return r.byToken(token), nil
}

func (r *staleReadRepository) FindByVerificationCode(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.VerificationCode == code {
			return cloneTicket(ticket), nil
		}
	}
	return nil, nil
}

func TestRegistrationLedger_RejectsStaleReads(t *testing.T) {
	ledger, repo, c := setupLedger(t)
	ledger.Repository = &staleReadRepository{repo}
	ctx := context.Background()

	used, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "jane@example.com")
	require.NoError(t, err)
	_, err = ledger.Consume(ctx, used.Token, samplePayload(), "ABCD1234")
	require.NoError(t, err)

	_, err = ledger.Validate(ctx, used.Token)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, customStatus(t, err))

	expiring, err := ledger.Issue(ctx, constvars.ContactMethodEmail, "john@example.com")
	require.NoError(t, err)
	c.Advance(24*time.Hour + time.Second)
	_, err = ledger.Validate(ctx, expiring.Token)
	require.Error(t, err)

	_, err = ledger.LookupByVerificationCode(ctx, "ABCD1234")
	require.NoError(t, err)
	c.Advance(7 * 24 * time.Hour)
	_, err = ledger.LookupByVerificationCode(ctx, "ABCD1234")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, customStatus(t, err))
}
