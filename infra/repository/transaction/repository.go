package transaction

import (
	"context"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct {
	db    *gorm.DB
	table string
}

// New creates a transaction repository bound to the table for the given
// scope.
func New(db *gorm.DB, scope domain.Scope) repository.TransactionRepository {
	return &repo{db: db, table: TableFor(scope)}
}

// Append implements repository.TransactionRepository.
func (r *repo) Append(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	t := Transaction{
		ID:       uuid.New(),
		UserID:   create.UserID,
		Symbol:   create.Symbol,
		Quantity: create.Quantity,
		Type:     string(create.Type),
		Price:    create.Price,
		Amount:   create.Amount,
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(&t).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&t), nil
}

// ListBuys implements repository.TransactionRepository. Ascending
// created_at is the FIFO replay order.
func (r *repo) ListBuys(ctx context.Context, userID uuid.UUID, symbol string) ([]dto.TransactionRead, error) {
	var ts []Transaction
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND symbol = ? AND type = ?", userID, symbol, domain.TradeBuy).
		Order("created_at ASC").
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(ts), nil
}

// ListByUser implements repository.TransactionRepository.
func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionRead, error) {
	var ts []Transaction
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return mapModelsToDTOs(ts), nil
}

func mapModelsToDTOs(ts []Transaction) []dto.TransactionRead {
	out := make([]dto.TransactionRead, 0, len(ts))
	for i := range ts {
		out = append(out, *mapModelToDTO(&ts[i]))
	}
	return out
}

func mapModelToDTO(t *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        t.ID,
		UserID:    t.UserID,
		Symbol:    t.Symbol,
		Quantity:  t.Quantity,
		Type:      domain.TradeType(t.Type),
		Price:     t.Price,
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
	}
}
