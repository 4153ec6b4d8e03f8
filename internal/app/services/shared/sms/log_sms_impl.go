package sms

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type logSMSSender struct {
	Log *zap.Logger
}

// NewLogSMSSender is used when Twilio credentials are missing or invalid.
func NewLogSMSSender(logger *zap.Logger) contracts.SMSSender {
	return &logSMSSender{Log: logger}
}

func (s *logSMSSender) SendSMS(ctx context.Context, payload *requests.SMSPayload) error {
	s.Log.Info("MOCK SMS",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("to", payload.To),
		zap.String("from", payload.From),
		zap.String("body", payload.Body),
	)
	return nil
}
