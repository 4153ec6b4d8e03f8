package storage

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type registrationArchiver struct {
	Storage    contracts.Storage
	BucketName string
	Log        *zap.Logger
}

// NewRegistrationArchiver stores a JSON snapshot of each completed
// submission. A nil storage yields an archiver that only logs.
func NewRegistrationArchiver(storage contracts.Storage, bucketName string, logger *zap.Logger) contracts.RegistrationArchiver {
	return &registrationArchiver{
		Storage:    storage,
		BucketName: bucketName,
		Log:        logger,
	}
}

func (a *registrationArchiver) Archive(ctx context.Context, archive *models.RegistrationArchive) error {
	requestID := utils.GetRequestID(ctx)

	if a.Storage == nil {
		a.Log.Debug("registrationArchiver.Archive skipped, storage disabled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTicketIDKey, archive.TicketID),
		)
		return nil
	}

	payload, err := json.Marshal(archive)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GenerateArchiveObjectName(archive.TicketID, archive.SubmittedAt)
	return utils.LogOperation(a.Log, "registrationArchiver.Archive", requestID, func() error {
		return a.Storage.PutJSON(ctx, a.BucketName, objectName, payload)
	})
}
