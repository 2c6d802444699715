// Package repository defines the persistence boundary the services depend
// on. No business rules live here; implementations are in infra/repository.
package repository

import (
	"context"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/google/uuid"
)

// UserRepository persists user credentials.
type UserRepository interface {
	Create(ctx context.Context, create dto.UserCreate) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)
}

// AccountRepository persists per-user financial state. GetByUserID with
// lock=true acquires a row lock for the duration of the surrounding
// transaction, serializing trades per account.
type AccountRepository interface {
	Create(ctx context.Context, create dto.AccountCreate) error
	GetByUserID(ctx context.Context, userID uuid.UUID, lock bool) (*dto.AccountRead, error)
	UpdateState(ctx context.Context, userID uuid.UUID, scope domain.Scope, state domain.LedgerState) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, update dto.ProfileUpdate) error
}

// HoldingRepository persists current holdings for one ledger scope.
type HoldingRepository interface {
	Get(ctx context.Context, userID uuid.UUID, symbol string) (*dto.HoldingRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.HoldingRead, error)
	Upsert(ctx context.Context, upsert dto.HoldingUpsert) error
	Delete(ctx context.Context, userID uuid.UUID, symbol string) error
}

// TransactionRepository is the append-only ledger for one scope. ListBuys
// returns buy records ordered by creation time ascending; that ordering is
// the FIFO key for cost reconstruction.
type TransactionRepository interface {
	Append(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error)
	ListBuys(ctx context.Context, userID uuid.UUID, symbol string) ([]dto.TransactionRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionRead, error)
}

// AssetRepository reads the asset catalog.
type AssetRepository interface {
	List(ctx context.Context) ([]dto.AssetRead, error)
	ListByRisk(ctx context.Context, risk domain.RiskTolerance) ([]dto.AssetRead, error)
}
