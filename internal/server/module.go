package server

import (
	"context"

	"inventory_agent/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		fx.Provide(NewHandler),
		fx.Provide(NewApp),
		fx.Invoke(registerLifecycle),
	)
}

func registerLifecycle(lc fx.Lifecycle, app *fiber.App, cfg config.Config, logger *zap.Logger) {
	logger = logger.Named("server")
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				logger.Info("listening", zap.String("addr", cfg.ListenAddr))
				if err := app.Listen(cfg.ListenAddr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
