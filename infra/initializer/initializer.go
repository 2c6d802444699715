// Package initializer builds the dependency container from configuration:
// database, unit of work, caches and external providers.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anshgandhiii/InvestmentHub/infra"
	"github.com/anshgandhiii/InvestmentHub/infra/cache"
	"github.com/anshgandhiii/InvestmentHub/infra/gemini"
	"github.com/anshgandhiii/InvestmentHub/infra/provider/alphavantage"
	infrarepo "github.com/anshgandhiii/InvestmentHub/infra/repository"
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/provider"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies wires all infrastructure dependencies.
func InitializeDependencies(ctx context.Context, cfg *config.App) (config.Deps, error) {
	logger := slog.Default()

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return config.Deps{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infrarepo.Migrate(db); err != nil {
		return config.Deps{}, fmt.Errorf("failed to migrate database: %w", err)
	}

	var quoteCache provider.QuoteCache
	if cfg.Redis.Addr != "" {
		quoteCache = cache.NewRedisQuoteCache(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, "quote:", logger)
		logger.Info("quote cache: redis", "addr", cfg.Redis.Addr)
	} else {
		quoteCache = cache.NewMemoryQuoteCache()
		logger.Info("quote cache: in-memory")
	}

	var model provider.ContentGenerator
	if cfg.Agent.ApiKey != "" {
		model, err = gemini.NewClient(ctx, cfg.Agent.ApiKey, gemini.WithModel(cfg.Agent.Model))
		if err != nil {
			return config.Deps{}, fmt.Errorf("failed to create Gemini client: %w", err)
		}
	} else {
		logger.Warn("AGENT_API_KEY not set, agent endpoint disabled")
		model = unavailableModel{}
	}

	return config.Deps{
		Uow:        infrarepo.NewUoW(db),
		QuoteCache: quoteCache,
		Quotes:     alphavantage.New(cfg.Market),
		Model:      model,
		Logger:     logger,
		Config:     cfg,
	}, nil
}

// unavailableModel is installed when no API key is configured; the agent
// endpoint then fails cleanly instead of at dial time.
type unavailableModel struct{}

func (unavailableModel) GenerateContent(context.Context, string) (string, error) {
	return "", fmt.Errorf("agent model is not configured")
}
