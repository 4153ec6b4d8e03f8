package routers

import (
	"fmt"
	"net/http"
	"registration-service/internal/app/config"
	"registration-service/internal/app/delivery/http/controllers"
	"registration-service/internal/app/delivery/http/middlewares"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	patientController *controllers.PatientController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	window := time.Duration(internalConfig.App.MaxTimeRequestsWindowInMinutes) * time.Minute
	router.Use(httprate.Limit(
		internalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	))

	router.Use(middlewares.BodyLimit)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WelcomeMessage, nil)
	})

	loginRateLimiter := middlewares.LoginRateLimiter()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, loginRateLimiter, authController)
		})

		r.Route("/registration", func(r chi.Router) {
			attachRegistrationRoutes(r, middlewares, registrationController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})
	})
}
