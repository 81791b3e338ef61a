package routers

import (
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/otp/request", authController.RequestOTP)
	router.Post("/otp/validate", authController.ValidateOTP)
}
