package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/handler"
)

func (r *Router) registerGamificationRoutes(
	api fiber.Router,
	gh *handler.GamificationHandler,
	authRequired fiber.Handler,
	businessHeader fiber.Handler,
	managersOnly fiber.Handler,
) {
	g := api.Group("/gamification", authRequired, businessHeader)

	g.Get("/wallet", gh.Wallet)
	g.Get("/rewards", gh.Rewards)
	g.Post("/redeem", gh.Redeem)
	g.Post("/bonus", managersOnly, gh.Bonus)
}
