// Package user provides registration, login and profile operations.
// Registration seeds the account with the starting balance in both ledger
// scopes inside the same transaction that creates the user.
package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service provides user account operations.
type Service struct {
	uow    repository.UnitOfWork
	jwt    config.JwtConfig
	logger *slog.Logger
}

// NewService creates a user Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, jwt: deps.Config.Jwt, logger: deps.Logger}
}

// Register creates a user and their account. The account starts at the
// fixed starting balance, in the real and virtual scope alike.
func (s *Service) Register(ctx context.Context, username, email, password string) (userID uuid.UUID, err error) {
	logger := s.logger.With("username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if _, err := users.GetByUsername(ctx, username); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		userID = uuid.New()
		if err := users.Create(ctx, dto.UserCreate{
			ID:       userID,
			Username: username,
			Password: string(hash),
		}); err != nil {
			return err
		}

		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return accounts.Create(ctx, dto.AccountCreate{
			ID:            uuid.New(),
			UserID:        userID,
			Email:         email,
			RiskTolerance: domain.RiskMedium,
		})
	})
	if err != nil {
		logger.Error("registration failed", "error", err)
		return uuid.Nil, err
	}
	logger.Info("user registered", "user_id", userID)
	return userID, nil
}

// Login verifies credentials and returns the user id with a signed JWT.
func (s *Service) Login(ctx context.Context, username, password string) (userID uuid.UUID, token string, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.GetByUsername(ctx, username)
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		} else if err != nil {
			return err
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return domain.ErrInvalidCredentials
		}
		userID = u.ID
		token, err = s.signToken(u.ID)
		return err
	})
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, token, nil
}

func (s *Service) signToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(s.jwt.Expiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwt.Secret))
}

// Profile is the full profile view: identity plus both ledger states.
type Profile struct {
	UserID        uuid.UUID
	Username      string
	Email         string
	RiskTolerance domain.RiskTolerance
	Real          domain.LedgerState
	Virtual       domain.LedgerState
}

// GetProfile returns the profile for the given user.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (p *Profile, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.GetByUserID(ctx, userID, false)
		if err != nil {
			return err
		}
		p = &Profile{
			UserID:        u.ID,
			Username:      u.Username,
			Email:         acct.Email,
			RiskTolerance: acct.RiskTolerance,
			Real:          acct.Real,
			Virtual:       acct.Virtual,
		}
		return nil
	})
	return p, err
}

// UpdateProfile applies a partial profile update and returns the result.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, update dto.ProfileUpdate) (*Profile, error) {
	if update.RiskTolerance != nil && !update.RiskTolerance.Valid() {
		return nil, domain.ErrInvalidRequest
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.GetByUserID(ctx, userID, false); err != nil {
			return err
		}
		return accounts.UpdateProfile(ctx, userID, update)
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
