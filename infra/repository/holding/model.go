package holding

import (
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/google/uuid"
)

// Holding represents a portfolio entry. The same model backs the real and
// virtual tables; the repository selects the table by scope. A holding
// only exists while its quantity is positive.
// The (user_id, symbol) unique index is created per table in Migrate; a
// tag-declared index name would collide between the two tables.
type Holding struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Symbol    string    `gorm:"type:varchar(100);not null"`
	Quantity  int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableFor returns the table name backing the given scope.
func TableFor(scope domain.Scope) string {
	if scope == domain.ScopeVirtual {
		return "virtual_holdings"
	}
	return "holdings"
}
