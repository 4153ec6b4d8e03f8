package contracts

import (
	"context"
	"registration-service/internal/app/models"
	"time"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, accountID string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (string, error)
	UpdatePasswordHash(ctx context.Context, accountID, passwordHash string, updatedAt time.Time) error
}
