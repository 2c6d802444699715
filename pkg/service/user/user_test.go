package user

import (
	"context"
	"testing"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/testutils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *testutils.MemoryUoW) {
	t.Helper()
	uow := testutils.NewMemoryUoW()
	return NewService(testutils.NewTestDeps(uow)), uow
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	userID, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, userID)

	p, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, domain.RiskMedium, p.RiskTolerance)
	assert.True(t, p.Real.Balance.Equal(domain.StartingBalance))
	assert.True(t, p.Virtual.Balance.Equal(domain.StartingBalance))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "alice", "other@example.com", "password456")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	seeded := uow.SeedUser("bob", "bob@example.com", "password123")

	userID, token, err := svc.Login(ctx, "bob", "password123")
	require.NoError(t, err)
	assert.Equal(t, seeded, userID)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, seeded.String(), claims["user_id"])
}

func TestLoginBadPassword(t *testing.T) {
	svc, uow := newTestService(t)
	uow.SeedUser("bob", "bob@example.com", "password123")

	_, _, err := svc.Login(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	userID := uow.SeedUser("carol", "carol@example.com", "password123")

	risk := domain.RiskHigh
	email := "carol@corp.example.com"
	p, err := svc.UpdateProfile(ctx, userID, dto.ProfileUpdate{RiskTolerance: &risk, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, domain.RiskHigh, p.RiskTolerance)
	assert.Equal(t, email, p.Email)

	// A nil field leaves the stored value untouched.
	low := domain.RiskLow
	p, err = svc.UpdateProfile(ctx, userID, dto.ProfileUpdate{RiskTolerance: &low})
	require.NoError(t, err)
	assert.Equal(t, domain.RiskLow, p.RiskTolerance)
	assert.Equal(t, email, p.Email)
}

func TestUpdateProfileInvalidRisk(t *testing.T) {
	svc, uow := newTestService(t)
	userID := uow.SeedUser("carol", "carol@example.com", "password123")

	bad := domain.RiskTolerance("reckless")
	_, err := svc.UpdateProfile(context.Background(), userID, dto.ProfileUpdate{RiskTolerance: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	risk := domain.RiskHigh
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), dto.ProfileUpdate{RiskTolerance: &risk})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
