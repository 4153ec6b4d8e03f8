package mailer

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type queueMailer struct {
	Channel *amqp091.Channel
	Queue   string
}

// NewQueueMailer publishes email payloads to the mail worker queue.
func NewQueueMailer(rabbitMQConnection *amqp091.Connection, queue string) (contracts.EmailSender, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	return &queueMailer{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *queueMailer) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: utils.GetRequestID(ctx),
		Timestamp:     time.Now().UTC(),
		Type:          constvars.MailerMessageTypeEmail,
		Headers: amqp091.Table{
			"requeue_strategy": "DROP",
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	return nil
}
