package contracts

import (
	"context"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/dto/requests"
)

type NotificationGateway interface {
	Notify(ctx context.Context, contactMethod, contactValue, templateKind string, data *models.NotificationData) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, payload *requests.SMSPayload) error
}
