package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	staffOnly fiber.Handler,
) {
	// Public: customers book from the business page with the tenant header.
	api.Post("/appointments", businessHeader, ah.Create)

	a := api.Group("/appointments/:id", authRequired, businessHeader)
	a.Get("/", ah.GetByID)
	a.Patch("/complete", staffOnly, ah.Complete)
	a.Patch("/cancel", staffOnly, ah.Cancel)
}
