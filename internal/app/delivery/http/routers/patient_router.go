package routers

import (
	"registration-service/internal/app/delivery/http/controllers"
	"registration-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/{id}", patientController.GetPatientByID)
	router.Put("/{id}", patientController.UpdatePatient)
}
