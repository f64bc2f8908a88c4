package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/trimsy-app/trimsy_backend/config"
	"github.com/trimsy-app/trimsy_backend/internal/api/http/handler"
	"github.com/trimsy-app/trimsy_backend/internal/api/http/middleware"
	"github.com/trimsy-app/trimsy_backend/internal/service/availability"
	"github.com/trimsy-app/trimsy_backend/internal/service/booking"
	"github.com/trimsy-app/trimsy_backend/internal/service/loyalty"
	"github.com/trimsy-app/trimsy_backend/internal/service/schedule"
	"github.com/trimsy-app/trimsy_backend/internal/store"
	pasetotoken "github.com/trimsy-app/trimsy_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	DB              *store.Store
	AvailabilitySvc availability.Service
	BookingSvc      booking.Service
	LoyaltySvc      loyalty.Service
	ScheduleSvc     schedule.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr)
	businessHeader := middleware.BusinessHeader(r.p.DB)
	staffOnly := middleware.RequireRole(
		pasetotoken.RoleOwner,
		pasetotoken.RoleManager,
		pasetotoken.RoleStaff,
	)
	managersOnly := middleware.RequireRole(
		pasetotoken.RoleOwner,
		pasetotoken.RoleManager,
	)

	// 3. Initialize Handlers
	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	appointmentH := handler.NewAppointmentHandler(r.p.BookingSvc)
	gamificationH := handler.NewGamificationHandler(r.p.LoyaltySvc)
	scheduleH := handler.NewScheduleHandler(r.p.ScheduleSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAvailabilityRoutes(api, availabilityH, businessHeader)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, businessHeader, staffOnly)
	r.registerGamificationRoutes(api, gamificationH, authRequired, businessHeader, managersOnly)
	r.registerScheduleRoutes(api, scheduleH, authRequired, businessHeader, managersOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.DB.Pool().Ping(c.Context()) == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
