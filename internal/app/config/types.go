package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
		Twilio   Twilio
	}

	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host      string
		Port      string
		Password  string
		DB        int
		KeyPrefix string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Twilio struct {
		BaseUrl    string
		AccountSID string
		AuthToken  string
		FromNumber string
	}
)

type (
	InternalConfig struct {
		App          App
		JWT          AppJWT
		Registration AppRegistration
		Notification AppNotification
		Minio        AppMinio
		RabbitMQ     AppRabbitMQ
		Seed         AppSeed
	}

	App struct {
		Env                               string
		Port                              string
		Version                           string
		Address                           string
		EndpointPrefix                    string
		FrontendURL                       string
		AllowedOrigins                    []string
		MaxRequests                       int
		MaxTimeRequestsWindowInMinutes    int
		ShutdownTimeoutInSeconds          int
		RequestBodyLimitInMegabyte        int
		LoginMaxRequestsPerMinute         int
		LoginBlockDurationInMinutes       int
		RequestTimeoutInSeconds           int
		MongoDBIndexCreationTimeInSeconds int
	}

	AppJWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppRegistration struct {
		LinkExpiredTimeInHours            int
		VerificationCodeExpiredTimeInDays int
		VerificationCodeLength            int
		SendLinkCooldownInSeconds         int
		SweeperCronSpec                   string
		SweeperRetentionInHours           int
	}

	AppNotification struct {
		EmailSenderName           string
		EmailSenderAddress        string
		SMSDefaultCountryCode     string
		NotificationTimeoutInSecs int
	}

	AppMinio struct {
		BucketName string
	}

	AppRabbitMQ struct {
		MailerQueue string
	}

	AppSeed struct {
		Name     string
		Email    string
		Password string
	}
)
