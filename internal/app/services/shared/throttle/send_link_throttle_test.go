package throttle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestSendLinkThrottle(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire Uses Lowercased Contact Key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("SetNX", ctx, "registration:send-link:email:jane@example.com", mock.Anything, time.Minute).Return(true, nil).Once()

		throttle := NewSendLinkThrottle(repo, time.Minute, "1")
		acquired, err := throttle.Acquire(ctx, "email", "Jane@Example.com")

		require.NoError(t, err)
		assert.True(t, acquired)
		repo.AssertExpectations(t)
	})

	t.Run("Cooldown Active", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("SetNX", ctx, mock.Anything, mock.Anything, time.Minute).Return(false, nil).Once()

		acquired, err := NewSendLinkThrottle(repo, time.Minute, "1").Acquire(ctx, "sms", "+15550102000")

		require.NoError(t, err)
		assert.False(t, acquired, "second request inside the cooldown should be refused")
	})

	t.Run("Redis Error Propagates", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("SetNX", ctx, mock.Anything, mock.Anything, time.Minute).Return(false, errors.New("connection refused")).Once()

		_, err := NewSendLinkThrottle(repo, time.Minute, "1").Acquire(ctx, "sms", "+15550102000")
		assert.Error(t, err)
	})

	t.Run("Release Deletes Key", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Delete", ctx, "registration:send-link:sms:+15550102000").Return(nil).Once()

		err := NewSendLinkThrottle(repo, time.Minute, "1").Release(ctx, "sms", "+15550102000")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("SMS Numbers Share A Key Across Formats", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("SetNX", ctx, "registration:send-link:sms:+15550102000", mock.Anything, time.Minute).Return(true, nil).Once()
		repo.On("SetNX", ctx, "registration:send-link:sms:+15550102000", mock.Anything, time.Minute).Return(false, nil).Twice()

		throttle := NewSendLinkThrottle(repo, time.Minute, "1")
		acquired, err := throttle.Acquire(ctx, "sms", "+1 555-010-2000")
		require.NoError(t, err)
		assert.True(t, acquired)

		acquired, err = throttle.Acquire(ctx, "sms", "5550102000")
		require.NoError(t, err)
		assert.False(t, acquired)

		acquired, err = throttle.Acquire(ctx, "sms", " (555) 010-2000 ")
		require.NoError(t, err)
		assert.False(t, acquired)
		repo.AssertExpectations(t)
	})

	t.Run("Disabled Without Redis", func(t *testing.T) {
		throttle := NewSendLinkThrottle(nil, time.Minute, "1")

		acquired, err := throttle.Acquire(ctx, "email", "jane@example.com")
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NoError(t, throttle.Release(ctx, "email", "jane@example.com"))
	})
}
