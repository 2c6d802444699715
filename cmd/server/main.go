package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anshgandhiii/InvestmentHub/infra/initializer"
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/webapi"
	log "github.com/charmbracelet/log"
)

// @title InvestmentHub API
// @version 1.0.0
// @description Simulated investment portal: trading, paper trading, portfolio and advisory.
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app, err := webapi.SetupApp(deps)
	if err != nil {
		return fmt.Errorf("failed to set up application: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)

	return app.Listen(addr)
}
