package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"required_with":  "is required",
	"email":          "must be a valid email",
	"alphanum":       "must contain only alphanumeric characters",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"len":            "must be exactly %s characters long",
	"oneof":          "must be one of: %s",
	"datetime":       "must follow the %s format",
	"marital_status": "must be one of: Single, Married, Divorced, Widowed, Other",
	"gender":         "must be one of: Male, Female, Other, Prefer not to say",
	"contact_method": "must be either email or sms",
	"phone_number":   "phone number must contain 7 to 15 digits",
	"not_future":     "date cannot be in the future",
}

// TagsWithParams lists tags whose message embeds the validator param
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientInvalidCurrentPassword        = "current password is incorrect"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidContactMethod          = "contact method must be either email or sms"
	ErrClientContactValueRequired          = "contactValue is required"
	ErrClientContactValueInvalidEmail      = "contactValue must be a valid email address"
	ErrClientRegistrationLinkInvalid       = "invalid or expired registration link"
	ErrClientRegistrationCodeInvalid       = "invalid or expired registration code"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientNotificationDelivery          = "failed to send notification, please try again later"
	ErrClientSendLinkTooFrequent           = "a registration link was sent recently, please wait before requesting another"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput                  = "invalid input"
	ErrDevCannotParseJSON               = "cannot parse JSON"
	ErrDevSomethingWrongWithApplication = "unhandled error"
	ErrDevCannotMarshalJSON             = "cannot marshal JSON"
	ErrDevFailedToHashPassword          = "failed to hash password"
	ErrDevInvalidCredentials            = "invalid credentials"
	ErrDevInvalidCurrentPassword        = "current password does not match stored hash"
	ErrDevEmailAlreadyExists            = "email already exists"
	ErrDevValidationFailed              = "validation failed"
	ErrDevURLParamValidationFailed      = "url param %s validation failed"
	ErrDevInvalidContactMethod          = "contact method is not supported"
	ErrDevRegistrationLinkInvalid       = "registration token is unknown, used or expired"
	ErrDevRegistrationCodeNotFound      = "verification code is unknown or expired"
	ErrDevPatientNotFound               = "patient document not found"
	ErrDevAccountNotFound               = "account document not found"
	ErrDevNotificationDelivery          = "notification transport failed to deliver %s via %s"
	ErrDevNotificationTemplate          = "failed to render notification template %s"
	ErrDevUnknownTemplateKind           = "unknown notification template kind"
	ErrDevSendLinkTooFrequent           = "send-link cooldown still active for contact"
	ErrDevTooManyRequests               = "request limit exceeded"
	ErrDevGenerateRandom                = "failed to read from crypto random source"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Database messages
	ErrDevMongoDBInsertDocument    = "failed to insert document into mongodb"
	ErrDevMongoDBUpdateDocument    = "failed to update document in mongodb"
	ErrDevMongoDBFindDocument      = "failed to find document in mongodb"
	ErrDevMongoDBCountDocument     = "failed to count documents in mongodb"
	ErrDevMongoDBDeleteDocument    = "failed to delete documents in mongodb"
	ErrDevMongoDBCreateIndex       = "failed to create mongodb index"
	ErrDevMongoDBStringNotObjectID = "given ID is not valid object ID"
	ErrDevMongoDBDuplicateKey      = "duplicate key on unique index"

	// Redis messages
	ErrDevRedisSetNX  = "failed to set key with NX into redis"
	ErrDevRedisDelete = "failed to delete key from redis"

	// Minio messages
	ErrDevMinioPutObject    = "failed to put object into minio"
	ErrDevMinioCreateBucket = "failed to ensure minio bucket"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanicRecovered   = "panic recovered"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
