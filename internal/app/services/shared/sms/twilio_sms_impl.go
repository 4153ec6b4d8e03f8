package sms

import (
	"context"
	"errors"
	"fmt"
	"net"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const twilioMessagesPath = "/2010-04-01/Accounts/{accountSid}/Messages.json"

type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type twilioErrorResponse struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

type twilioSMSSender struct {
	httpClient *resty.Client
	accountSID string
	Log        *zap.Logger
}

// IsTwilioConfigured reports whether real Twilio credentials are present.
// Account SIDs always start with "AC".
func IsTwilioConfigured(twilioConfig config.Twilio) bool {
	return strings.HasPrefix(twilioConfig.AccountSID, "AC") &&
		twilioConfig.AuthToken != "" &&
		twilioConfig.FromNumber != ""
}

// retryOnDialError retries only when the connection was never established.
// A request that reached Twilio may already have queued the message, so
// timeouts and error responses are not retried.
func retryOnDialError(_ *resty.Response, err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func NewTwilioSMSSender(twilioConfig config.Twilio, timeout time.Duration, logger *zap.Logger) contracts.SMSSender {
	client := resty.New().
		SetBaseURL(twilioConfig.BaseUrl).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(retryOnDialError).
		SetBasicAuth(twilioConfig.AccountSID, twilioConfig.AuthToken).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	return &twilioSMSSender{
		httpClient: client,
		accountSID: twilioConfig.AccountSID,
		Log:        logger,
	}
}

func (s *twilioSMSSender) SendSMS(ctx context.Context, payload *requests.SMSPayload) error {
	var result twilioMessageResponse
	var failure twilioErrorResponse

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetPathParam("accountSid", s.accountSID).
		SetFormData(map[string]string{
			"To":   payload.To,
			"From": payload.From,
			"Body": payload.Body,
		}).
		SetResult(&result).
		SetError(&failure).
		Post(twilioMessagesPath)
	if err != nil {
		return fmt.Errorf("failed to call Twilio API: %w", err)
	}

	if resp.IsError() {
		s.Log.Error("Twilio API returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.Int("twilio_code", failure.Code),
			zap.String("twilio_message", failure.Message),
		)
		return fmt.Errorf("twilio API error: %s (status: %d, code: %d)", failure.Message, resp.StatusCode(), failure.Code)
	}

	s.Log.Info("SMS accepted by Twilio",
		zap.String("message_sid", result.SID),
		zap.String("message_status", result.Status),
	)
	return nil
}
