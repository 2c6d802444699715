package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents per-user financial state: the real ledger columns and
// their virtual_ shadow set for paper trading. Balance invariants are
// enforced by the ledger engine, not the schema.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email         string    `gorm:"type:varchar(254)"`
	RiskTolerance string    `gorm:"type:varchar(10);not null;default:'medium'"`

	Balance        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	BoughtSum      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	StocksTotal    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	BondsTotal     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	InsuranceTotal decimal.Decimal `gorm:"type:numeric(15,2);not null"`

	VirtualBalance        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	VirtualBoughtSum      decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	VirtualStocksTotal    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	VirtualBondsTotal     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	VirtualInsuranceTotal decimal.Decimal `gorm:"type:numeric(15,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
