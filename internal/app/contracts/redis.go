package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}
