package transaction

import (
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one immutable ledger record. Rows are only ever
// appended; created_at is the FIFO ordering key for cost reconstruction.
// The same model backs the real and virtual tables.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null"`
	Symbol    string          `gorm:"type:varchar(100);not null"`
	Quantity  int64           `gorm:"not null"`
	Type      string          `gorm:"type:varchar(4);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreatedAt time.Time
}

// TableFor returns the table name backing the given scope.
func TableFor(scope domain.Scope) string {
	if scope == domain.ScopeVirtual {
		return "virtual_transactions"
	}
	return "transactions"
}
