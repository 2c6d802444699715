// Package catalog serves the asset catalog and the static insurance-plan
// list. Assets live in the database; insurance plans ship as an embedded
// fixture loaded at startup.
package catalog

import (
	"context"
	"log/slog"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/google/uuid"
)

// Service provides catalog reads.
type Service struct {
	uow    repository.UnitOfWork
	plans  []InsurancePlan
	logger *slog.Logger
}

// NewService creates a catalog Service. It loads the embedded insurance
// plans once; a malformed fixture is a programming error and fails startup.
func NewService(deps config.Deps) (*Service, error) {
	plans, err := LoadInsurancePlans("")
	if err != nil {
		return nil, err
	}
	return &Service{uow: deps.Uow, plans: plans, logger: deps.Logger}, nil
}

// ListAssets returns the whole asset catalog.
func (s *Service) ListAssets(ctx context.Context) (out []dto.AssetRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		assets, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		out, err = assets.List(ctx)
		return err
	})
	return out, err
}

// Suggestions returns the assets matching the user's risk tolerance.
func (s *Service) Suggestions(ctx context.Context, userID uuid.UUID) (out []dto.AssetRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.GetByUserID(ctx, userID, false)
		if err != nil {
			return err
		}
		assets, err := uow.AssetRepository()
		if err != nil {
			return err
		}
		out, err = assets.ListByRisk(ctx, acct.RiskTolerance)
		return err
	})
	return out, err
}

// InsurancePlans returns the static plan list, optionally filtered by risk
// level. An empty filter returns every plan.
func (s *Service) InsurancePlans(risk domain.RiskTolerance) []InsurancePlan {
	if risk == "" {
		return s.plans
	}
	out := make([]InsurancePlan, 0, len(s.plans))
	for _, p := range s.plans {
		if p.RiskLevel == risk {
			out = append(out, p)
		}
	}
	return out
}
