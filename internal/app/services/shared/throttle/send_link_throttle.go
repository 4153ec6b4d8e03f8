package throttle

import (
	"context"
	"fmt"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/utils"
	"strings"
	"time"
)

type redisSendLinkThrottle struct {
	Redis              contracts.RedisRepository
	Cooldown           time.Duration
	DefaultCountryCode string
}

// NewSendLinkThrottle limits link requests to one per contact per cooldown.
// A nil repository or a non positive cooldown disables throttling.
// SMS numbers are keyed in the same normalized form they are sent to.
func NewSendLinkThrottle(redisRepository contracts.RedisRepository, cooldown time.Duration, defaultCountryCode string) contracts.SendLinkThrottle {
	if redisRepository == nil || cooldown <= 0 {
		return noopThrottle{}
	}
	return &redisSendLinkThrottle{
		Redis:              redisRepository,
		Cooldown:           cooldown,
		DefaultCountryCode: defaultCountryCode,
	}
}

func (t *redisSendLinkThrottle) cooldownKey(contactMethod, contactValue string) string {
	if contactMethod == constvars.ContactMethodSMS {
		contactValue = utils.NormalizeSMSNumber(contactValue, t.DefaultCountryCode)
	}
	return fmt.Sprintf(constvars.AppSendLinkCooldownKey, contactMethod, strings.ToLower(strings.TrimSpace(contactValue)))
}

func (t *redisSendLinkThrottle) Acquire(ctx context.Context, contactMethod, contactValue string) (bool, error) {
	return t.Redis.SetNX(ctx, t.cooldownKey(contactMethod, contactValue), time.Now().Unix(), t.Cooldown)
}

func (t *redisSendLinkThrottle) Release(ctx context.Context, contactMethod, contactValue string) error {
	return t.Redis.Delete(ctx, t.cooldownKey(contactMethod, contactValue))
}

type noopThrottle struct{}

func (noopThrottle) Acquire(ctx context.Context, contactMethod, contactValue string) (bool, error) {
	return true, nil
}

func (noopThrottle) Release(ctx context.Context, contactMethod, contactValue string) error {
	return nil
}
