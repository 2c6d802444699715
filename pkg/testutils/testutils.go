// Package testutils provides an in-memory UnitOfWork so service and handler
// tests run without a database. Do is a pass-through: every repository sees
// the same shared state, and a failed callback does not roll it back. The
// engine rejects invalid trades before mutating, so tests asserting "nothing
// changed on failure" remain meaningful.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryUoW is an in-memory repository.UnitOfWork over plain maps.
type MemoryUoW struct {
	mu           sync.Mutex
	users        map[uuid.UUID]dto.UserRead
	accounts     map[uuid.UUID]*dto.AccountRead
	assets       []dto.AssetRead
	holdings     map[domain.Scope]map[string]*dto.HoldingRead
	transactions map[domain.Scope][]dto.TransactionRead
	clock        time.Time
}

// NewMemoryUoW returns an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{
		users:    make(map[uuid.UUID]dto.UserRead),
		accounts: make(map[uuid.UUID]*dto.AccountRead),
		holdings: map[domain.Scope]map[string]*dto.HoldingRead{
			domain.ScopeReal:    {},
			domain.ScopeVirtual: {},
		},
		transactions: map[domain.Scope][]dto.TransactionRead{
			domain.ScopeReal:    {},
			domain.ScopeVirtual: {},
		},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Do runs fn against the shared state. There is no transaction to roll back.
func (m *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *MemoryUoW) UserRepository() (repository.UserRepository, error) {
	return &memUserRepo{m}, nil
}

func (m *MemoryUoW) AccountRepository() (repository.AccountRepository, error) {
	return &memAccountRepo{m}, nil
}

func (m *MemoryUoW) AssetRepository() (repository.AssetRepository, error) {
	return &memAssetRepo{m}, nil
}

func (m *MemoryUoW) HoldingRepository(scope domain.Scope) (repository.HoldingRepository, error) {
	return &memHoldingRepo{m, scope}, nil
}

func (m *MemoryUoW) TransactionRepository(scope domain.Scope) (repository.TransactionRepository, error) {
	return &memTransactionRepo{m, scope}, nil
}

// nextTime hands out strictly increasing timestamps so the buy history has
// a stable FIFO order even when appends land within the same wall tick.
func (m *MemoryUoW) nextTime() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

// SeedUser creates a user with a bcrypt-hashed password and a fresh account
// in both scopes, returning the user id.
func (m *MemoryUoW) SeedUser(username, email, password string) uuid.UUID {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	id := uuid.New()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = dto.UserRead{ID: id, Username: username, Password: string(hash)}
	m.accounts[id] = &dto.AccountRead{
		ID:            uuid.New(),
		UserID:        id,
		Email:         email,
		RiskTolerance: domain.RiskMedium,
		Real:          domain.NewLedgerState(),
		Virtual:       domain.NewLedgerState(),
		CreatedAt:     m.clock,
	}
	return id
}

// SeedAssets replaces the asset catalog.
func (m *MemoryUoW) SeedAssets(assets ...dto.AssetRead) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = assets
}

// Account returns a copy of the stored account for assertions.
func (m *MemoryUoW) Account(userID uuid.UUID) dto.AccountRead {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.accounts[userID]
}

type memUserRepo struct{ m *MemoryUoW }

func (r *memUserRepo) Create(ctx context.Context, create dto.UserCreate) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.users[create.ID] = dto.UserRead(create)
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memAccountRepo struct{ m *MemoryUoW }

func (r *memAccountRepo) Create(ctx context.Context, create dto.AccountCreate) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.accounts[create.UserID] = &dto.AccountRead{
		ID:            create.ID,
		UserID:        create.UserID,
		Email:         create.Email,
		RiskTolerance: create.RiskTolerance,
		Real:          domain.NewLedgerState(),
		Virtual:       domain.NewLedgerState(),
		CreatedAt:     r.m.nextTime(),
	}
	return nil
}

func (r *memAccountRepo) GetByUserID(ctx context.Context, userID uuid.UUID, lock bool) (*dto.AccountRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	acct, ok := r.m.accounts[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *acct
	return &cp, nil
}

func (r *memAccountRepo) UpdateState(ctx context.Context, userID uuid.UUID, scope domain.Scope, state domain.LedgerState) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	acct, ok := r.m.accounts[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if scope == domain.ScopeVirtual {
		acct.Virtual = state
	} else {
		acct.Real = state
	}
	return nil
}

func (r *memAccountRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, update dto.ProfileUpdate) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	acct, ok := r.m.accounts[userID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if update.RiskTolerance != nil {
		acct.RiskTolerance = *update.RiskTolerance
	}
	if update.Email != nil {
		acct.Email = *update.Email
	}
	return nil
}

type memAssetRepo struct{ m *MemoryUoW }

func (r *memAssetRepo) List(ctx context.Context) ([]dto.AssetRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]dto.AssetRead(nil), r.m.assets...), nil
}

func (r *memAssetRepo) ListByRisk(ctx context.Context, risk domain.RiskTolerance) ([]dto.AssetRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []dto.AssetRead
	for _, a := range r.m.assets {
		if a.RiskLevel == risk {
			out = append(out, a)
		}
	}
	return out, nil
}

type memHoldingRepo struct {
	m     *MemoryUoW
	scope domain.Scope
}

func holdingKey(userID uuid.UUID, symbol string) string {
	return userID.String() + "|" + symbol
}

func (r *memHoldingRepo) Get(ctx context.Context, userID uuid.UUID, symbol string) (*dto.HoldingRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	h, ok := r.m.holdings[r.scope][holdingKey(userID, symbol)]
	if !ok {
		return nil, domain.ErrHoldingNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *memHoldingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.HoldingRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []dto.HoldingRead
	for _, h := range r.m.holdings[r.scope] {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (r *memHoldingRepo) Upsert(ctx context.Context, upsert dto.HoldingUpsert) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	key := holdingKey(upsert.UserID, upsert.Symbol)
	if h, ok := r.m.holdings[r.scope][key]; ok {
		h.Quantity = upsert.Quantity
		return nil
	}
	r.m.holdings[r.scope][key] = &dto.HoldingRead{
		ID:       uuid.New(),
		UserID:   upsert.UserID,
		Symbol:   upsert.Symbol,
		Quantity: upsert.Quantity,
	}
	return nil
}

func (r *memHoldingRepo) Delete(ctx context.Context, userID uuid.UUID, symbol string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.holdings[r.scope], holdingKey(userID, symbol))
	return nil
}

type memTransactionRepo struct {
	m     *MemoryUoW
	scope domain.Scope
}

func (r *memTransactionRepo) Append(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rec := dto.TransactionRead{
		ID:        uuid.New(),
		UserID:    create.UserID,
		Symbol:    create.Symbol,
		Quantity:  create.Quantity,
		Type:      create.Type,
		Price:     create.Price,
		Amount:    create.Amount,
		CreatedAt: r.m.nextTime(),
	}
	r.m.transactions[r.scope] = append(r.m.transactions[r.scope], rec)
	cp := rec
	return &cp, nil
}

func (r *memTransactionRepo) ListBuys(ctx context.Context, userID uuid.UUID, symbol string) ([]dto.TransactionRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []dto.TransactionRead
	for _, rec := range r.m.transactions[r.scope] {
		if rec.UserID == userID && rec.Symbol == symbol && rec.Type == domain.TradeBuy {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionRead, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []dto.TransactionRead
	for _, rec := range r.m.transactions[r.scope] {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// NewTestDeps returns a dependency container backed by the given in-memory
// unit of work, with a discarding logger and a test JWT secret.
func NewTestDeps(uow repository.UnitOfWork) config.Deps {
	return config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.App{
			Jwt: config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
		},
	}
}

// MakeRequest performs one request against the app and returns the response.
func MakeRequest(app *fiber.App, method, path, body, token string) *http.Response {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
