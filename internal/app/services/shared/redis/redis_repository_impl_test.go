package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("String Stored Raw", func(t *testing.T) {
		stored, err := encode("2026-03-01T09:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01T09:00:00Z", stored)
	})

	t.Run("Number Stored As JSON", func(t *testing.T) {
		stored, err := encode(int64(1700000000))
		require.NoError(t, err)
		assert.Equal(t, []byte("1700000000"), stored)
	})

	t.Run("Unsupported Value", func(t *testing.T) {
		_, err := encode(make(chan int))
		assert.Error(t, err)
	})
}

func TestRedisRepository_Key(t *testing.T) {
	assert.Equal(t, "svc:send-link:email:a@b.c", (&redisRepository{keyPrefix: "svc"}).key("send-link:email:a@b.c"))
	assert.Equal(t, "send-link:email:a@b.c", (&redisRepository{}).key("send-link:email:a@b.c"))
}
