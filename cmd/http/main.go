package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/delivery/http/controllers"
	"registration-service/internal/app/delivery/http/middlewares"
	"registration-service/internal/app/delivery/http/routers"
	"registration-service/internal/app/drivers/database"
	"registration-service/internal/app/drivers/logger"
	smtpDriver "registration-service/internal/app/drivers/mailer"
	"registration-service/internal/app/drivers/messaging"
	"registration-service/internal/app/drivers/storage"
	"registration-service/internal/app/services/core/accounts"
	"registration-service/internal/app/services/core/auth"
	"registration-service/internal/app/services/core/patients"
	"registration-service/internal/app/services/core/registrations"
	"registration-service/internal/app/services/shared/generator"
	"registration-service/internal/app/services/shared/mailer"
	"registration-service/internal/app/services/shared/notification"
	"registration-service/internal/app/services/shared/redis"
	"registration-service/internal/app/services/shared/sms"
	sharedStorage "registration-service/internal/app/services/shared/storage"
	"registration-service/internal/app/services/shared/throttle"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if internalConfig.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, internalConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.MongoDBIndexCreationTimeInSeconds)*time.Second)
	err := database.EnsureIndexes(indexCtx, mongoDB)
	cancelIndex()
	if err != nil {
		log.Fatal("Failed to ensure MongoDB indexes", zap.Error(err))
	}

	sweeper := bootstrapingTheApp(bootstrap)
	sweeper.Start(context.Background())

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	sweeper.Stop()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) *registrations.Sweeper {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Repositories
	accountRepository := accounts.NewAccountMongoRepository(bootstrap.MongoDB, log)
	registrationRepository := registrations.NewRegistrationMongoRepository(bootstrap.MongoDB, log)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, log)
	nextOfKinRepository := patients.NewNextOfKinMongoRepository(bootstrap.MongoDB, log)

	// Send-link cooldown
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis, bootstrap.DriverConfig.Redis.KeyPrefix)
	}
	sendLinkThrottle := throttle.NewSendLinkThrottle(
		redisRepository,
		time.Duration(internalConfig.Registration.SendLinkCooldownInSeconds)*time.Second,
		internalConfig.Notification.SMSDefaultCountryCode,
	)

	// Registration archive
	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
		bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := objectStorage.EnsureBucket(bucketCtx, internalConfig.Minio.BucketName); err != nil {
			log.Warn("Registration archive bucket unavailable", zap.Error(err))
		}
		cancel()
	}
	archiver := sharedStorage.NewRegistrationArchiver(objectStorage, internalConfig.Minio.BucketName, log)

	// Notification transports
	notificationGateway := notification.NewNotificationGateway(
		newEmailSender(bootstrap),
		newSMSSender(bootstrap),
		notification.Config{
			EmailSenderName:       internalConfig.Notification.EmailSenderName,
			EmailSenderAddress:    internalConfig.Notification.EmailSenderAddress,
			SMSFromNumber:         bootstrap.DriverConfig.Twilio.FromNumber,
			SMSDefaultCountryCode: internalConfig.Notification.SMSDefaultCountryCode,
		},
		log,
	)

	// Usecases
	codeGenerator := generator.NewCodeGenerator(registrationRepository, patientRepository)
	authUsecase := auth.NewAuthUsecase(accountRepository, internalConfig, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, nextOfKinRepository, log)
	registrationLedger := registrations.NewRegistrationLedger(registrationRepository, codeGenerator, internalConfig, log)
	registrationUsecase := registrations.NewRegistrationUsecase(
		registrationLedger,
		codeGenerator,
		patientUsecase,
		notificationGateway,
		sendLinkThrottle,
		archiver,
		internalConfig,
		log,
	)

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, authUsecase, internalConfig)
	authController := controllers.NewAuthController(log, authUsecase, internalConfig)
	registrationController := controllers.NewRegistrationController(log, registrationUsecase, internalConfig)
	patientController := controllers.NewPatientController(log, patientUsecase, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, authController, registrationController, patientController)

	return registrations.NewSweeper(registrationRepository, redisRepository, internalConfig, log)
}

func newEmailSender(bootstrap *config.Bootstrap) contracts.EmailSender {
	log := bootstrap.Logger

	if bootstrap.RabbitMQ != nil {
		queueMailer, err := mailer.NewQueueMailer(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MailerQueue)
		if err == nil {
			log.Info("Email transport selected", zap.String("transport", "rabbitmq"))
			return queueMailer
		}
		log.Warn("RabbitMQ mailer unavailable, falling back", zap.Error(err))
	}

	if smtpClient := smtpDriver.NewSMTPClient(bootstrap.DriverConfig); smtpClient != nil {
		log.Info("Email transport selected", zap.String("transport", "smtp"))
		return mailer.NewSMTPMailer(smtpClient)
	}

	log.Warn("Email credentials not configured, emails will be logged only")
	return mailer.NewLogMailer(log)
}

func newSMSSender(bootstrap *config.Bootstrap) contracts.SMSSender {
	log := bootstrap.Logger

	if sms.IsTwilioConfigured(bootstrap.DriverConfig.Twilio) {
		timeout := time.Duration(bootstrap.InternalConfig.Notification.NotificationTimeoutInSecs) * time.Second
		log.Info("SMS transport selected", zap.String("transport", "twilio"))
		return sms.NewTwilioSMSSender(bootstrap.DriverConfig.Twilio, timeout, log)
	}

	log.Warn("Twilio credentials not configured, SMS will be logged only")
	return sms.NewLogSMSSender(log)
}
