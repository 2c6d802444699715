package holding

import (
	"context"
	"errors"

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

// New creates a holding repository bound to the table for the given scope.
func New(db *gorm.DB, scope domain.Scope) repository.HoldingRepository {
	return &repo{db: db, table: TableFor(scope)}
}

// Get implements repository.HoldingRepository.
func (r *repo) Get(ctx context.Context, userID uuid.UUID, symbol string) (*dto.HoldingRead, error) {
	var h Holding
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHoldingNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&h), nil
}

// ListByUser implements repository.HoldingRepository.
func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.HoldingRead, error) {
	var hs []Holding
	err := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ?", userID).
		Order("symbol ASC").
		Find(&hs).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.HoldingRead, 0, len(hs))
	for i := range hs {
		out = append(out, *mapModelToDTO(&hs[i]))
	}
	return out, nil
}

// Upsert implements repository.HoldingRepository. The quantity is replaced,
// not added; the engine computes the new total.
func (r *repo) Upsert(ctx context.Context, upsert dto.HoldingUpsert) error {
	res := r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND symbol = ?", upsert.UserID, upsert.Symbol).
		Update("quantity", upsert.Quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	h := Holding{
		ID:       uuid.New(),
		UserID:   upsert.UserID,
		Symbol:   upsert.Symbol,
		Quantity: upsert.Quantity,
	}
	return r.db.WithContext(ctx).Table(r.table).Create(&h).Error
}

// Delete implements repository.HoldingRepository.
func (r *repo) Delete(ctx context.Context, userID uuid.UUID, symbol string) error {
	return r.db.WithContext(ctx).Table(r.table).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&Holding{}).Error
}

func mapModelToDTO(h *Holding) *dto.HoldingRead {
	return &dto.HoldingRead{
		ID:       h.ID,
		UserID:   h.UserID,
		Symbol:   h.Symbol,
		Quantity: h.Quantity,
	}
}
