package storage

import (
	"context"
	"errors"
	"registration-service/internal/app/models"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *MockStorage) PutJSON(ctx context.Context, bucketName, objectName string, payload []byte) error {
	args := m.Called(ctx, bucketName, objectName, payload)
	return args.Error(0)
}

func TestRegistrationArchiver_Archive(t *testing.T) {
	ctx := context.Background()
	archive := &models.RegistrationArchive{
		TicketID:         "ticket-1",
		PatientID:        "patient-1",
		VerificationCode: "AB12CD34",
		SubmittedAt:      time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Stores Snapshot Under Dated Prefix", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("PutJSON", ctx, "registrations", mock.MatchedBy(func(objectName string) bool {
			return strings.HasPrefix(objectName, "registrations/2024/03/09/ticket-1-") && strings.HasSuffix(objectName, ".json")
		}), mock.MatchedBy(func(payload []byte) bool {
			var decoded models.RegistrationArchive
			return json.Unmarshal(payload, &decoded) == nil && decoded.PatientID == "patient-1"
		})).Return(nil).Once()

		archiver := NewRegistrationArchiver(storage, "registrations", zap.NewNop())
		err := archiver.Archive(ctx, archive)

		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("Storage Failure Is Returned", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("PutJSON", ctx, "registrations", mock.Anything, mock.Anything).Return(errors.New("bucket missing")).Once()

		err := NewRegistrationArchiver(storage, "registrations", zap.NewNop()).Archive(ctx, archive)
		assert.Error(t, err)
	})

	t.Run("Disabled Storage Is A No-op", func(t *testing.T) {
		err := NewRegistrationArchiver(nil, "registrations", zap.NewNop()).Archive(ctx, archive)
		assert.NoError(t, err)
	})
}
