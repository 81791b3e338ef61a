package routers

import (
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Route("/doctors", func(r chi.Router) {
		r.Get("/", doctorController.Search)
		r.Get("/{doctorID}", doctorController.FindByID)
		r.Get("/{doctorID}/slots", doctorController.FindSlots)
	})

	router.Get("/localities", doctorController.FindLocalities)
	router.Get("/map", doctorController.FindMapView)
}
