package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type Config struct {
	EmailSenderName       string
	EmailSenderAddress    string
	SMSFromNumber         string
	SMSDefaultCountryCode string
}

type notificationGateway struct {
	EmailSender contracts.EmailSender
	SMSSender   contracts.SMSSender
	Config      Config
	Log         *zap.Logger
}

func NewNotificationGateway(emailSender contracts.EmailSender, smsSender contracts.SMSSender, cfg Config, logger *zap.Logger) contracts.NotificationGateway {
	return &notificationGateway{
		EmailSender: emailSender,
		SMSSender:   smsSender,
		Config:      cfg,
		Log:         logger,
	}
}

func (g *notificationGateway) Notify(ctx context.Context, contactMethod, contactValue, templateKind string, data *models.NotificationData) error {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("notificationGateway.Notify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactMethodKey, contactMethod),
		zap.String(constvars.LoggingTemplateKindKey, templateKind),
	)

	if data == nil {
		data = &models.NotificationData{}
	}

	var err error
	switch contactMethod {
	case constvars.ContactMethodEmail:
		err = g.sendEmail(ctx, contactValue, templateKind, data)
	case constvars.ContactMethodSMS:
		err = g.sendSMS(ctx, contactValue, templateKind, data)
	default:
		return exceptions.ErrInvalidContactMethod(nil)
	}
	if err != nil {
		g.Log.Error("notificationGateway.Notify delivery failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContactMethodKey, contactMethod),
			zap.String(constvars.LoggingTemplateKindKey, templateKind),
			zap.Error(err),
		)
		return exceptions.ErrNotificationDelivery(err, templateKind, contactMethod)
	}

	g.Log.Info("notificationGateway.Notify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactMethodKey, contactMethod),
		zap.String(constvars.LoggingTemplateKindKey, templateKind),
	)
	return nil
}

func (g *notificationGateway) sendEmail(ctx context.Context, to, templateKind string, data *models.NotificationData) error {
	rendered, err := renderEmail(templateKind, data)
	if err != nil {
		return exceptions.ErrNotificationTemplate(err, templateKind)
	}

	return g.EmailSender.SendEmail(ctx, &requests.EmailPayload{
		Subject:  rendered.Subject,
		From:     fmt.Sprintf(constvars.EmailFromFormat, g.Config.EmailSenderName, g.Config.EmailSenderAddress),
		To:       []string{to},
		HTMLCode: base64.StdEncoding.EncodeToString([]byte(rendered.HTMLBody)),
		Encoded:  true,
	})
}

func (g *notificationGateway) sendSMS(ctx context.Context, to, templateKind string, data *models.NotificationData) error {
	body, err := renderSMS(templateKind, data)
	if err != nil {
		return exceptions.ErrNotificationTemplate(err, templateKind)
	}

	return g.SMSSender.SendSMS(ctx, &requests.SMSPayload{
		To:   utils.NormalizeSMSNumber(to, g.Config.SMSDefaultCountryCode),
		From: g.Config.SMSFromNumber,
		Body: body,
	})
}
