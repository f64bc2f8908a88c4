package app

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/trimsy-app/trimsy_backend/config"
	"github.com/trimsy-app/trimsy_backend/internal/store"
	"github.com/trimsy-app/trimsy_backend/pkg/database"
	"github.com/trimsy-app/trimsy_backend/pkg/observability"
	pasetotoken "github.com/trimsy-app/trimsy_backend/pkg/paseto"
	redispkg "github.com/trimsy-app/trimsy_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvidePool),
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvidePasetoManager),
	fx.Provide(ProvideOTel),
	fx.Invoke(RunAutoMigrate),
)

func ProvidePool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(context.Background(), database.FromCentralConfig(cfg.Database))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database pool")
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func ProvideStore(pool *pgxpool.Pool) *store.Store {
	return store.New(pool)
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.Init(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// RunAutoMigrate applies pending migrations on boot when
// database.migrations.auto_migrate is set.
func RunAutoMigrate(cfg *config.Config, pool *pgxpool.Pool) error {
	if !cfg.Database.Migrations.AutoMigrate {
		return nil
	}

	m, err := store.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	slog.Info("applying database migrations")
	return m.Up(context.Background())
}
