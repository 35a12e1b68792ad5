package internal

import (
	"context"

	"inventory_agent/internal/blob"
	"inventory_agent/internal/cli"
	"inventory_agent/internal/config"
	"inventory_agent/internal/llm"
	"inventory_agent/internal/logging"
	"inventory_agent/internal/server"
	"inventory_agent/internal/statsapi"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// RunChat starts the console chat client.
func RunChat() error {
	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		statsapi.Module(),
		llm.Module(),
		cli.Module(),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}

// RunServer starts the HTTP KPI server and blocks until shutdown.
func RunServer() error {
	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		logging.Module(),
		blob.Module(),
		server.Module(),
	)

	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}
