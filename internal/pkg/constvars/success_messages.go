package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	WelcomeMessage = "hospital registration service is running"

	// Auth messages
	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	ProfileGetSuccess     = "get profile successfully"
	PasswordUpdateSuccess = "password updated successfully"

	// Registration messages
	RegistrationLinkSentSuccess     = "registration link sent successfully"
	RegistrationLinkValidSuccess    = "registration link is valid"
	RegistrationSubmittedSuccess    = "registration submitted successfully"
	RegistrationCodeFoundSuccess    = "registration found"
	RegistrationCodeRedeemedSuccess = "registration code marked as used"

	// Patient messages
	PatientGetSuccess    = "get patient successfully"
	PatientUpdateSuccess = "patient updated successfully"
)
