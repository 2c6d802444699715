package asset

import (
	"context"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New creates an asset repository over the provided *gorm.DB.
func New(db *gorm.DB) repository.AssetRepository {
	return &repo{db: db}
}

// List implements repository.AssetRepository.
func (r *repo) List(ctx context.Context) ([]dto.AssetRead, error) {
	var as []Asset
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&as).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTOs(as), nil
}

// ListByRisk implements repository.AssetRepository.
func (r *repo) ListByRisk(ctx context.Context, risk domain.RiskTolerance) ([]dto.AssetRead, error) {
	var as []Asset
	err := r.db.WithContext(ctx).
		Where("risk_level = ?", string(risk)).
		Order("name ASC").
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(as), nil
}

func mapModelsToDTOs(as []Asset) []dto.AssetRead {
	out := make([]dto.AssetRead, 0, len(as))
	for i := range as {
		a := &as[i]
		out = append(out, dto.AssetRead{
			ID:        a.ID,
			Name:      a.Name,
			Type:      domain.AssetClass(a.Type),
			Price:     a.Price,
			RiskLevel: domain.RiskTolerance(a.RiskLevel),
		})
	}
	return out
}
