package routers

import (
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.Post("/", bookingController.Open)
	router.Put("/{bookingID}", bookingController.Update)
	router.Post("/{bookingID}/confirm", bookingController.Confirm)
	router.Delete("/{bookingID}", bookingController.Dismiss)
}
