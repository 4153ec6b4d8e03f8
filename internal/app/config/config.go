package config

import (
	"registration-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital_registration"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:      utils.GetEnvString("REDIS_HOST", ""),
			Port:      utils.GetEnvString("REDIS_PORT", "6379"),
			Password:  utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:        utils.GetEnvInt("REDIS_DB", 0),
			KeyPrefix: utils.GetEnvString("REDIS_KEY_PREFIX", "registration-service"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", ""),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", ""),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", ""),
			Port:     utils.GetEnvInt("SMTP_PORT", 587),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Twilio: Twilio{
			BaseUrl:    utils.GetEnvString("TWILIO_BASE_URL", "https://api.twilio.com"),
			AccountSID: utils.GetEnvString("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  utils.GetEnvString("TWILIO_AUTH_TOKEN", ""),
			FromNumber: utils.GetEnvString("TWILIO_PHONE_NUMBER", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	frontendURL := utils.GetEnvString("FRONTEND_URL", "http://localhost:3000")

	return &InternalConfig{
		App: App{
			Env:                               utils.GetEnvString("APP_ENV", "development"),
			Port:                              utils.GetEnvString("APP_PORT", "5000"),
			Version:                           utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                           utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:                    utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendURL:                       frontendURL,
			AllowedOrigins:                    utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{frontendURL}),
			MaxRequests:                       utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsWindowInMinutes:    utils.GetEnvInt("APP_MAX_TIME_REQUESTS_WINDOW_IN_MINUTES", 10),
			ShutdownTimeoutInSeconds:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:        utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			LoginMaxRequestsPerMinute:         utils.GetEnvInt("APP_LOGIN_MAX_REQUESTS_PER_MINUTE", 5),
			LoginBlockDurationInMinutes:       utils.GetEnvInt("APP_LOGIN_BLOCK_DURATION_IN_MINUTES", 15),
			RequestTimeoutInSeconds:           utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MongoDBIndexCreationTimeInSeconds: utils.GetEnvInt("APP_MONGODB_INDEX_CREATION_TIME_IN_SECONDS", 30),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Registration: AppRegistration{
			LinkExpiredTimeInHours:            utils.GetEnvInt("APP_REGISTRATION_LINK_EXPIRED_TIME_IN_HOURS", 24),
			VerificationCodeExpiredTimeInDays: utils.GetEnvInt("APP_VERIFICATION_CODE_EXPIRED_TIME_IN_DAYS", 7),
			VerificationCodeLength:            utils.GetEnvInt("APP_VERIFICATION_CODE_LENGTH", 8),
			SendLinkCooldownInSeconds:         utils.GetEnvInt("APP_SEND_LINK_COOLDOWN_IN_SECONDS", 60),
			SweeperCronSpec:                   utils.GetEnvString("APP_REGISTRATION_SWEEPER_CRON_SPEC", ""),
			SweeperRetentionInHours:           utils.GetEnvInt("APP_REGISTRATION_SWEEPER_RETENTION_IN_HOURS", 72),
		},
		Notification: AppNotification{
			EmailSenderName:           utils.GetEnvString("EMAIL_SENDER_NAME", "Hospital Registration"),
			EmailSenderAddress:        utils.GetEnvString("EMAIL_SENDER_EMAIL", "noreply@hospital.com"),
			SMSDefaultCountryCode:     utils.GetEnvString("SMS_DEFAULT_COUNTRY_CODE", "1"),
			NotificationTimeoutInSecs: utils.GetEnvInt("APP_NOTIFICATION_TIMEOUT_IN_SECONDS", 10),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("APP_MINIO_BUCKET_NAME", "registrations"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", ""),
		},
		Seed: AppSeed{
			Name:     utils.GetEnvString("SEED_FRONTDESK_NAME", "Front Desk"),
			Email:    utils.GetEnvString("SEED_FRONTDESK_EMAIL", "frontdesk@hospital.com"),
			Password: utils.GetEnvString("SEED_FRONTDESK_PASSWORD", "password123"),
		},
	}
}
