package account

import (
	"context"
	"errors"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// New creates an account repository over the provided *gorm.DB.
func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

// Create implements repository.AccountRepository. Both scopes are seeded
// with the starting balance.
func (r *repo) Create(ctx context.Context, create dto.AccountCreate) error {
	real := domain.NewLedgerState()
	virtual := domain.NewLedgerState()
	acct := Account{
		ID:            create.ID,
		UserID:        create.UserID,
		Email:         create.Email,
		RiskTolerance: string(create.RiskTolerance),

		Balance:        real.Balance,
		BoughtSum:      real.BoughtSum,
		StocksTotal:    real.StocksTotal,
		BondsTotal:     real.BondsTotal,
		InsuranceTotal: real.InsuranceTotal,

		VirtualBalance:        virtual.Balance,
		VirtualBoughtSum:      virtual.BoughtSum,
		VirtualStocksTotal:    virtual.StocksTotal,
		VirtualBondsTotal:     virtual.BondsTotal,
		VirtualInsuranceTotal: virtual.InsuranceTotal,
	}
	return r.db.WithContext(ctx).Create(&acct).Error
}

// GetByUserID implements repository.AccountRepository. With lock=true the
// row is fetched FOR UPDATE, holding a per-account lock until the
// surrounding transaction commits.
func (r *repo) GetByUserID(ctx context.Context, userID uuid.UUID, lock bool) (*dto.AccountRead, error) {
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var acct Account
	if err := q.First(&acct, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// UpdateState implements repository.AccountRepository. The scope selects
// the real columns or their virtual_ shadows.
func (r *repo) UpdateState(ctx context.Context, userID uuid.UUID, scope domain.Scope, state domain.LedgerState) error {
	prefix := ""
	if scope == domain.ScopeVirtual {
		prefix = "virtual_"
	}
	updates := map[string]any{
		prefix + "balance":         state.Balance,
		prefix + "bought_sum":      state.BoughtSum,
		prefix + "stocks_total":    state.StocksTotal,
		prefix + "bonds_total":     state.BondsTotal,
		prefix + "insurance_total": state.InsuranceTotal,
	}
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

// UpdateProfile implements repository.AccountRepository.
func (r *repo) UpdateProfile(ctx context.Context, userID uuid.UUID, update dto.ProfileUpdate) error {
	updates := make(map[string]any)
	if update.RiskTolerance != nil {
		updates["risk_tolerance"] = string(*update.RiskTolerance)
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            acct.ID,
		UserID:        acct.UserID,
		Email:         acct.Email,
		RiskTolerance: domain.RiskTolerance(acct.RiskTolerance),
		Real: domain.LedgerState{
			Balance:        acct.Balance,
			BoughtSum:      acct.BoughtSum,
			StocksTotal:    acct.StocksTotal,
			BondsTotal:     acct.BondsTotal,
			InsuranceTotal: acct.InsuranceTotal,
		},
		Virtual: domain.LedgerState{
			Balance:        acct.VirtualBalance,
			BoughtSum:      acct.VirtualBoughtSum,
			StocksTotal:    acct.VirtualStocksTotal,
			BondsTotal:     acct.VirtualBondsTotal,
			InsuranceTotal: acct.VirtualInsuranceTotal,
		},
		CreatedAt: acct.CreatedAt,
	}
}
