package notification

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
)

var errUnknownTemplateKind = errors.New(constvars.ErrDevUnknownTemplateKind)

var registrationLinkEmailTemplate = template.Must(template.New(constvars.TemplateRegistrationLink).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3366cc;">Hospital Patient Registration</h2>
  <p>Thank you for initiating your registration at our hospital.</p>
  <p>Please click the link below to complete your registration:</p>
  <p>
    <a href="{{.RegistrationLink}}" style="background-color: #3366cc; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">
      Complete Registration
    </a>
  </p>
  <p>This link will expire in {{.LinkExpiresInHours}} hours.</p>
  <p>If you did not request this registration, please ignore this email.</p>
  <p>Thank you,<br>Hospital Registration Team</p>
</div>`))

var registrationConfirmationEmailTemplate = template.Must(template.New(constvars.TemplateRegistrationConfirmation).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3366cc;">Registration Complete</h2>
  <p>Thank you for completing your registration at our hospital.</p>
  <p>Your unique registration code is:</p>
  <div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px; font-size: 24px; text-align: center; letter-spacing: 3px; font-weight: bold; margin: 20px 0;">
    {{.VerificationCode}}
  </div>
  <p>Please keep this code safe. You will need to provide it when you arrive at the hospital.</p>
  <p>Thank you,<br>Hospital Registration Team</p>
</div>`))

type renderedEmail struct {
	Subject  string
	HTMLBody string
}

func renderEmail(templateKind string, data *models.NotificationData) (*renderedEmail, error) {
	var (
		tmpl    *template.Template
		subject string
	)

	switch templateKind {
	case constvars.TemplateRegistrationLink:
		tmpl, subject = registrationLinkEmailTemplate, constvars.EmailSubjectRegistrationLink
	case constvars.TemplateRegistrationConfirmation:
		tmpl, subject = registrationConfirmationEmailTemplate, constvars.EmailSubjectRegistrationConfirmation
	default:
		return nil, errUnknownTemplateKind
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	return &renderedEmail{Subject: subject, HTMLBody: body.String()}, nil
}

func renderSMS(templateKind string, data *models.NotificationData) (string, error) {
	switch templateKind {
	case constvars.TemplateRegistrationLink:
		return fmt.Sprintf(constvars.SMSBodyRegistrationLink, data.RegistrationLink, data.LinkExpiresInHours), nil
	case constvars.TemplateRegistrationConfirmation:
		return fmt.Sprintf(constvars.SMSBodyRegistrationConfirmation, data.VerificationCode), nil
	default:
		return "", errUnknownTemplateKind
	}
}
