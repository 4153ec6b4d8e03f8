package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingAccountIDKey       = "account_id"
	LoggingPatientIDKey       = "patient_id"
	LoggingTicketIDKey        = "ticket_id"
	LoggingContactMethodKey   = "contact_method"
	LoggingTemplateKindKey    = "template_kind"
	LoggingErrorCodeKey       = "error_code"
	LoggingErrorMessageKey    = "error_message"
	LoggingOperationKey       = "operation"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingResponseLengthKey  = "response_length"
	LoggingRegistrationLink   = "registration_link"
	LoggingClientIPKey        = "client_ip"
	LoggingObjectNameKey      = "object_name"
	LoggingNotificationSender = "sender"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingUserAgentKey       = "user_agent"
	LoggingStatusCodeKey      = "status_code"
)
