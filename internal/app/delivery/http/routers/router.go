package routers

import (
	"fmt"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/appointments"
	"medifind-service/internal/app/services/core/auth"
	"medifind-service/internal/app/services/core/bookings"
	"medifind-service/internal/app/services/core/doctors"
	"medifind-service/internal/app/services/core/profiles"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	bookingController *bookings.BookingController,
	appointmentController *appointments.AppointmentController,
	profileController *profiles.ProfileController,
	authController *auth.AuthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(chimiddleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, requestLogger))
	router.Use(middlewares.ErrorHandler)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController)

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/users", func(r chi.Router) {
				attachProfileRoutes(r, middlewares, profileController)
			})

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})
		})
	})
}
