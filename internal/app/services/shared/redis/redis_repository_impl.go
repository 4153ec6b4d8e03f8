package redis

import (
	"context"
	"fmt"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRepository namespaces every key with keyPrefix so several
// deployments can share one Redis database.
func NewRedisRepository(client *redis.Client, keyPrefix string) contracts.RedisRepository {
	return &redisRepository{client: client, keyPrefix: keyPrefix}
}

func (r *redisRepository) key(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", r.keyPrefix, key)
}

// encode stores strings as-is and everything else as JSON.
func encode(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string, []byte:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return raw, nil
	}
}

func (r *redisRepository) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	stored, err := encode(value)
	if err != nil {
		return false, err
	}

	acquired, err := r.client.SetNX(ctx, r.key(key), stored, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSetNX(err)
	}
	return acquired, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
