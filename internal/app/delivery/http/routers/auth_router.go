package routers

import (
	"registration-service/internal/app/delivery/http/controllers"
	"registration-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginRateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(loginRateLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.GetMe)
	router.With(middlewares.Authenticate).Put("/password", authController.UpdatePassword)
}
