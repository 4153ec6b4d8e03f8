package generator

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCodeLookup struct {
	mock.Mock
}

func (m *MockCodeLookup) VerificationCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// recordingCodeStore answers lookups from the codes it has stored so far.
type recordingCodeStore struct {
	mu      sync.Mutex
	codes   map[string]struct{}
	lookups int
}

func newRecordingCodeStore() *recordingCodeStore {
	return &recordingCodeStore{codes: make(map[string]struct{})}
}

func (s *recordingCodeStore) VerificationCodeExists(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	_, exists := s.codes[code]
	return exists, nil
}

func (s *recordingCodeStore) store(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[code] = struct{}{}
}

func TestClampCodeLength(t *testing.T) {
	assert.Equal(t, 8, ClampCodeLength(0), "zero should fall back to the default")
	assert.Equal(t, 6, ClampCodeLength(4))
	assert.Equal(t, 7, ClampCodeLength(7))
	assert.Equal(t, 8, ClampCodeLength(12))
}

func TestCodeGenerator_MintToken(t *testing.T) {
	token, err := NewCodeGenerator().MintToken()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[a-f0-9]{64}$`), token)
}

func TestCodeGenerator_MintVerificationCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Free Code Returned", func(t *testing.T) {
		tickets := new(MockCodeLookup)
		patients := new(MockCodeLookup)
		tickets.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil).Once()
		patients.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil).Once()

		code, err := NewCodeGenerator(tickets, patients).MintVerificationCode(ctx, 8)

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), code)
		tickets.AssertExpectations(t)
		patients.AssertExpectations(t)
	})

	t.Run("Collision Triggers Regeneration", func(t *testing.T) {
		tickets := new(MockCodeLookup)
		patients := new(MockCodeLookup)
		tickets.On("VerificationCodeExists", ctx, mock.Anything).Return(true, nil).Twice()
		tickets.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil).Once()
		patients.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil).Once()

		code, err := NewCodeGenerator(tickets, patients).MintVerificationCode(ctx, 6)

		require.NoError(t, err)
		assert.Len(t, code, 6)
		tickets.AssertNumberOfCalls(t, "VerificationCodeExists", 3)
		patients.AssertNumberOfCalls(t, "VerificationCodeExists", 1)
	})

	t.Run("Patient Collision Also Counts", func(t *testing.T) {
		tickets := new(MockCodeLookup)
		patients := new(MockCodeLookup)
		tickets.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil)
		patients.On("VerificationCodeExists", ctx, mock.Anything).Return(true, nil).Once()
		patients.On("VerificationCodeExists", ctx, mock.Anything).Return(false, nil).Once()

		_, err := NewCodeGenerator(tickets, patients).MintVerificationCode(ctx, 8)

		require.NoError(t, err)
		patients.AssertNumberOfCalls(t, "VerificationCodeExists", 2)
	})

	t.Run("Storage Error Propagates", func(t *testing.T) {
		tickets := new(MockCodeLookup)
		tickets.On("VerificationCodeExists", ctx, mock.Anything).Return(false, errors.New("mongo down")).Once()

		_, err := NewCodeGenerator(tickets).MintVerificationCode(ctx, 8)
		assert.EqualError(t, err, "mongo down")
	})

	t.Run("Cancelled Context Stops Retrying", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewCodeGenerator(new(MockCodeLookup)).MintVerificationCode(cancelled, 8)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCodeGenerator_MintedCodesAreDistinct(t *testing.T) {
	ctx := context.Background()
	tickets := newRecordingCodeStore()
	patients := newRecordingCodeStore()
	generator := NewCodeGenerator(tickets, patients)

	const total = 2000
	seen := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		code, err := generator.MintVerificationCode(ctx, 6)
		require.NoError(t, err)

		_, duplicate := seen[code]
		require.False(t, duplicate, "code %s minted twice", code)
		seen[code] = struct{}{}

		if i%2 == 0 {
			tickets.store(code)
		} else {
			patients.store(code)
		}
	}

	assert.Len(t, seen, total)
	assert.GreaterOrEqual(t, tickets.lookups, total)
}
