package auth

import (
	"context"
	"errors"
	"fmt"
	"registration-service/internal/app/config"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type inMemoryAccountRepository struct {
	accounts map[string]*models.Account
	nextID   int
	findErr  error
}

func newInMemoryAccountRepository() *inMemoryAccountRepository {
	return &inMemoryAccountRepository{accounts: make(map[string]*models.Account)}
}

func (r *inMemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.accounts[accountID]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *inMemoryAccountRepository) Create(ctx context.Context, account *models.Account) (string, error) {
	r.nextID++
	id := fmt.Sprintf("%024x", r.nextID)
	stored := *account
	stored.ID = id
	r.accounts[id] = &stored
	return id, nil
}

func (r *inMemoryAccountRepository) UpdatePasswordHash(ctx context.Context, accountID, passwordHash string, updatedAt time.Time) error {
	account, ok := r.accounts[accountID]
	if !ok {
		return errors.New("not found")
	}
	account.PasswordHash = passwordHash
	account.UpdatedAt = updatedAt
	return nil
}

func setupAuthUsecase(t *testing.T) (*authUsecase, *inMemoryAccountRepository) {
	t.Helper()
	repo := newInMemoryAccountRepository()
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	uc := NewAuthUsecase(repo, internalConfig, zap.NewNop()).(*authUsecase)
	return uc, repo
}

func seedAccount(t *testing.T, uc *authUsecase) string {
	t.Helper()
	account, err := uc.CreateAccount(context.Background(), &requests.CreateAccount{
		Name:     "Front Desk",
		Email:    "frontdesk@hospital.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return account.ID
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestAuthUsecase_CreateAccount(t *testing.T) {
	uc, repo := setupAuthUsecase(t)
	ctx := context.Background()

	account, err := uc.CreateAccount(ctx, &requests.CreateAccount{
		Name:     "Front Desk",
		Email:    " FrontDesk@Hospital.com ",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "frontdesk@hospital.com", account.Email)
	assert.Equal(t, constvars.RoleFrontDesk, account.Role)

	stored := repo.accounts[account.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("password123", stored.PasswordHash))

	_, err = uc.CreateAccount(ctx, &requests.CreateAccount{
		Name:     "Another",
		Email:    "frontdesk@hospital.com",
		Password: "password456",
	})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
}

func TestAuthUsecase_EnsureAccount(t *testing.T) {
	uc, repo := setupAuthUsecase(t)
	ctx := context.Background()
	request := &requests.CreateAccount{Name: "Front Desk", Email: "frontdesk@hospital.com", Password: "password123"}

	first, created, err := uc.EnsureAccount(ctx, request)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := uc.EnsureAccount(ctx, request)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.accounts, 1)
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()
	accountID := seedAccount(t, uc)

	t.Run("Success", func(t *testing.T) {
		result, err := uc.Login(ctx, &requests.Login{Email: "FRONTDESK@hospital.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, accountID, result.Account.ID)

		claims, err := utils.ParseAccountJWT(result.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, accountID, claims.Subject)
		assert.Equal(t, constvars.RoleFrontDesk, claims.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.Login{Email: "frontdesk@hospital.com", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Unknown Email Gives Same Error", func(t *testing.T) {
		_, unknownErr := uc.Login(ctx, &requests.Login{Email: "nobody@hospital.com", Password: "password123"})
		_, wrongErr := uc.Login(ctx, &requests.Login{Email: "frontdesk@hospital.com", Password: "wrong"})
		require.Error(t, unknownErr)
		require.Error(t, wrongErr)

		var a, b *exceptions.CustomError
		require.True(t, errors.As(unknownErr, &a))
		require.True(t, errors.As(wrongErr, &b))
		assert.Equal(t, a.ClientMessage, b.ClientMessage)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, a.ClientMessage)
	})
}

func TestAuthUsecase_Authenticate(t *testing.T) {
	uc, repo := setupAuthUsecase(t)
	ctx := context.Background()
	accountID := seedAccount(t, uc)

	login, err := uc.Login(ctx, &requests.Login{Email: "frontdesk@hospital.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("Valid Token", func(t *testing.T) {
		claims, err := uc.Authenticate(ctx, login.Token)
		require.NoError(t, err)
		assert.Equal(t, accountID, claims.AccountID)
		assert.Equal(t, constvars.RoleFrontDesk, claims.Role)
	})

	t.Run("Missing Token", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, "")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Tampered Token", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, login.Token+"x")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateAccountJWT(accountID, constvars.RoleFrontDesk, "test-secret", time.Now().Add(-2*time.Hour), 1)
		require.NoError(t, err)

		_, err = uc.Authenticate(ctx, token)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Deleted Account", func(t *testing.T) {
		delete(repo.accounts, accountID)
		_, err := uc.Authenticate(ctx, login.Token)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})
}

func TestAuthUsecase_UpdatePassword(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()
	accountID := seedAccount(t, uc)

	err := uc.UpdatePassword(ctx, accountID, &requests.UpdatePassword{CurrentPassword: "wrong", NewPassword: "newpassword"})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))

	err = uc.UpdatePassword(ctx, accountID, &requests.UpdatePassword{CurrentPassword: "password123", NewPassword: "newpassword"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, &requests.Login{Email: "frontdesk@hospital.com", Password: "password123"})
	assert.Error(t, err)
	_, err = uc.Login(ctx, &requests.Login{Email: "frontdesk@hospital.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestAuthUsecase_GetMeAndLogout(t *testing.T) {
	uc, _ := setupAuthUsecase(t)
	ctx := context.Background()
	accountID := seedAccount(t, uc)

	me, err := uc.GetMe(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "frontdesk@hospital.com", me.Email)

	assert.NoError(t, uc.Logout(ctx, accountID))

	_, err = uc.GetMe(ctx, "000000000000000000000000")
	assert.Error(t, err)
}
