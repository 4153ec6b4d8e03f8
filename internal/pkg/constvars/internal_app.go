package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACCOUNT_ID_KEY           ContextKey = "account_id"
	CONTEXT_ACCOUNT_ROLE_KEY         ContextKey = "account_role"
)

const (
	REQUEST_ID_PREFIX = "HSPTL_REG_"
)

const (
	RoleFrontDesk = "frontdesk"
)

const (
	ContactMethodEmail = "email"
	ContactMethodSMS   = "sms"
)

const (
	TemplateRegistrationLink         = "registration_link"
	TemplateRegistrationConfirmation = "registration_confirmation"
)

const (
	MaritalStatusSingle   = "Single"
	MaritalStatusMarried  = "Married"
	MaritalStatusDivorced = "Divorced"
	MaritalStatusWidowed  = "Widowed"
	MaritalStatusOther    = "Other"
)

const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderOther          = "Other"
	GenderPreferNotToSay = "Prefer not to say"
)

const (
	VerificationCodeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	VerificationCodeMinLength     = 6
	VerificationCodeMaxLength     = 8
	VerificationCodeDefaultLength = 8
	VerificationCodeClaimAttempts = 5
	RegistrationTokenByteLength   = 32
)

const (
	AppRegistrationLinkFormat = "%s/register/%s"
	AppSendLinkCooldownKey    = "registration:send-link:%s:%s"
	AppArchiveObjectFormat    = "registrations/%s/%s.json"
	AppPasswordMinLength      = 6
	AppBcryptCost             = 10
	AppDummyPassword          = "registration-service-dummy-password"
)

const (
	MongoDBCollectionUsers             = "users"
	MongoDBCollectionRegistrationCodes = "registration_codes"
	MongoDBCollectionPatients          = "patients"
	MongoDBCollectionNextOfKins        = "next_of_kins"
)
