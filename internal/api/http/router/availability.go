package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/handler"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	businessHeader fiber.Handler,
) {
	// Public booking-page endpoint: tenant header only, no auth.
	api.Get("/availability", businessHeader, ah.Get)
}
