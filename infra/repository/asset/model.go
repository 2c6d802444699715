package asset

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a catalog entry in the database.
type Asset struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Type      string          `gorm:"type:varchar(10);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	RiskLevel string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Asset model.
func (Asset) TableName() string {
	return "assets"
}
