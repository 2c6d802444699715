// Package dto defines the read and write shapes crossing the boundary
// between services and repositories. Persistence models stay in infra;
// services only ever see these.
package dto

import (
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserCreate is the payload for creating a user record.
type UserCreate struct {
	ID       uuid.UUID
	Username string
	Password string // bcrypt hash, never plaintext
}

// UserRead is the read model of a user record.
type UserRead struct {
	ID       uuid.UUID
	Username string
	Password string
}

// AccountCreate is the payload for creating an account. Both scopes are
// seeded with the starting balance by the repository.
type AccountCreate struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Email         string
	RiskTolerance domain.RiskTolerance
}

// AccountRead is the read model of an account, carrying both ledger scopes.
type AccountRead struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Email         string
	RiskTolerance domain.RiskTolerance
	Real          domain.LedgerState
	Virtual       domain.LedgerState
	CreatedAt     time.Time
}

// State returns the ledger state for the given scope.
func (a *AccountRead) State(scope domain.Scope) domain.LedgerState {
	if scope == domain.ScopeVirtual {
		return a.Virtual
	}
	return a.Real
}

// ProfileUpdate is a partial update of the mutable profile fields. Nil
// fields are left untouched.
type ProfileUpdate struct {
	RiskTolerance *domain.RiskTolerance
	Email         *string
}

// HoldingUpsert creates or replaces the quantity of one holding.
type HoldingUpsert struct {
	UserID   uuid.UUID
	Symbol   string
	Quantity int64
}

// HoldingRead is the read model of a portfolio entry.
type HoldingRead struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Symbol   string
	Quantity int64
}

// TransactionCreate is the payload for appending a ledger record.
type TransactionCreate struct {
	UserID   uuid.UUID
	Symbol   string
	Quantity int64
	Type     domain.TradeType
	Price    decimal.Decimal
	Amount   decimal.Decimal
}

// TransactionRead is the read model of an immutable ledger record.
// ProfitLoss is computed per response on sells and is never persisted.
type TransactionRead struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Symbol     string
	Quantity   int64
	Type       domain.TradeType
	Price      decimal.Decimal
	Amount     decimal.Decimal
	CreatedAt  time.Time
	ProfitLoss *decimal.Decimal
}

// AssetRead is the read model of a catalog asset.
type AssetRead struct {
	ID        uuid.UUID
	Name      string
	Type      domain.AssetClass
	Price     decimal.Decimal
	RiskLevel domain.RiskTolerance
}
