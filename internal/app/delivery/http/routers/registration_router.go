package routers

import (
	"registration-service/internal/app/delivery/http/controllers"
	"registration-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, middlewares *middlewares.Middlewares, registrationController *controllers.RegistrationController) {
	router.Post("/send-link", registrationController.SendRegistrationLink)
	router.Get("/verify/{token}", registrationController.VerifyRegistrationLink)
	router.Post("/submit-with-token", registrationController.SubmitRegistration)

	router.With(middlewares.Authenticate).Get("/verify-code/{code}", registrationController.LookupVerificationCode)
	router.With(middlewares.Authenticate).Put("/verify-code/{code}/use", registrationController.RedeemVerificationCode)
}
