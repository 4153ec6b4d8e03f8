package constvars

const (
	RegexEmail              = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNonDigit           = `\D`
	RegexVerificationCode   = `^[A-Z0-9]{6,8}$`
	RegexRegistrationToken  = `^[a-f0-9]{64}$`
	RegexPhoneNumberGeneral = `^\+[1-9]\d{6,14}$`
)
