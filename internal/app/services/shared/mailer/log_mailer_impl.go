package mailer

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type logMailer struct {
	Log *zap.Logger
}

// NewLogMailer is used when no email transport is configured.
func NewLogMailer(logger *zap.Logger) contracts.EmailSender {
	return &logMailer{Log: logger}
}

func (s *logMailer) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	s.Log.Info("MOCK EMAIL",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Strings("to", payload.To),
		zap.String("from", payload.From),
		zap.String("subject", payload.Subject),
	)
	return nil
}
