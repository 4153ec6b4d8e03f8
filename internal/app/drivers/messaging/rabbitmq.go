package messaging

import (
	"fmt"
	"log"
	"registration-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ returns nil when the broker or the mailer queue is not configured.
func NewRabbitMQ(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *amqp091.Connection {
	if driverConfig.RabbitMQ.Host == "" || internalConfig.RabbitMQ.MailerQueue == "" {
		log.Println("RabbitMQ mailer queue is not configured, skipping broker connection")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
