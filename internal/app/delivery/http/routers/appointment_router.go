package routers

import (
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
