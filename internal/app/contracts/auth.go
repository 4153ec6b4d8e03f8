package contracts

import (
	"context"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Authenticate(ctx context.Context, token string) (*models.AccountClaims, error)
	GetMe(ctx context.Context, accountID string) (*responses.Account, error)
	UpdatePassword(ctx context.Context, accountID string, request *requests.UpdatePassword) error
	Logout(ctx context.Context, accountID string) error
	CreateAccount(ctx context.Context, request *requests.CreateAccount) (*responses.Account, error)
	// EnsureAccount creates the account unless one with the same email exists.
	EnsureAccount(ctx context.Context, request *requests.CreateAccount) (*responses.Account, bool, error)
}
