package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/assetdesk/assetdesk/internal/assets"
	"github.com/assetdesk/assetdesk/internal/auth"
	"github.com/assetdesk/assetdesk/internal/reports"
	"github.com/assetdesk/assetdesk/internal/router"
	"github.com/assetdesk/assetdesk/internal/session"
	"github.com/assetdesk/assetdesk/internal/users"
)

// App bundles the fully wired core services handed to the rendering
// collaborators.
type App struct {
	Config   *Config
	Logger   *slog.Logger
	Router   *router.Router
	Reports  *reports.Service
	Sessions session.Store
}

// Bootstrap wires the core from configuration and restores any persisted
// session. When cfg.RedisAddr is set the session store is redis backed,
// otherwise it falls back to the local file store.
func Bootstrap(ctx context.Context, cfg *Config) (*App, error) {
	logger := NewLogger(cfg)

	store, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	directory, err := auth.NewSeededDirectory()
	if err != nil {
		return nil, fmt.Errorf("app: seed directory: %w", err)
	}

	delays := auth.Delays{
		Login:   cfg.LoginDelay,
		Logout:  cfg.LogoutDelay,
		Profile: cfg.ProfileDelay,
	}
	if InTestMode() {
		delays = auth.Delays{}
	}
	authn := auth.NewService(directory, store, logger, delays)

	assetSvc := assets.NewService(assets.SeedAssets())
	userSvc := users.NewService(users.SeedUsers())

	rt := router.New(logger, authn, store, assetSvc, userSvc)
	rt.Restore(ctx)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Router:   rt,
		Reports:  reports.NewService(),
		Sessions: store,
	}, nil
}

func newSessionStore(ctx context.Context, cfg *Config, logger *slog.Logger) (session.Store, error) {
	if cfg.RedisAddr == "" {
		return session.NewFileStore(cfg.SessionPath, logger), nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("app: redis ping: %w", err)
	}
	return session.NewRedisStore(client, cfg.SessionKey, cfg.SessionTTL, logger), nil
}
