package user

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
	db *gorm.DB
}

// New creates a user repository over the provided *gorm.DB.
func New(db *gorm.DB) repository.UserRepository {
	return &repo{db: db}
}

// Create implements repository.UserRepository.
func (r *repo) Create(ctx context.Context, create dto.UserCreate) error {
	u := User{
		ID:       create.ID,
		Username: create.Username,
		Password: create.Password,
	}
	return r.db.WithContext(ctx).Create(&u).Error
}

// GetByID implements repository.UserRepository.
func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

// GetByUsername implements repository.UserRepository.
func (r *repo) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
	}
}
