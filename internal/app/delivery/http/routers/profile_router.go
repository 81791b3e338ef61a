package routers

import (
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/services/core/profiles"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *profiles.ProfileController) {
	router.With(middlewares.Authenticate).Get("/profile", profileController.Get)
	router.With(middlewares.Authenticate).Put("/profile", profileController.Replace)
	router.With(middlewares.Authenticate).Patch("/profile", profileController.PatchField)
	router.With(middlewares.Authenticate).Post("/profile/photo", profileController.UploadPhoto)
}
