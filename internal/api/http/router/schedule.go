package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(
	api fiber.Router,
	sh *handler.ScheduleHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	managersOnly fiber.Handler,
) {
	schedule := api.Group("/schedule", authRequired, businessHeader, managersOnly)

	schedule.Get("/windows", sh.List)
	schedule.Put("/windows", sh.Replace)
}
