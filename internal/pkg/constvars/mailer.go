package constvars

const (
	EmailSubjectRegistrationLink         = "Complete Your Patient Registration"
	EmailSubjectRegistrationConfirmation = "Your Patient Registration is Complete"
)

const (
	EmailSendHTMLFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailFromFormat     = "%s <%s>"
)

const (
	SMSBodyRegistrationLink         = "Complete your hospital registration by clicking this link: %s (Link expires in %d hours)"
	SMSBodyRegistrationConfirmation = "Your hospital registration is complete. Your registration code is: %s. Please keep this code and present it when you arrive at the hospital."
)

const MailerMessageTypeEmail = "registration.email"
