package config

import (
	"log/slog"

	"github.com/anshgandhiii/InvestmentHub/pkg/provider"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the services.
type Deps struct {
	Uow        repository.UnitOfWork
	QuoteCache provider.QuoteCache
	Quotes     provider.QuoteProvider
	Model      provider.ContentGenerator
	Logger     *slog.Logger
	Config     *App
}
