package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anshgandhiii/InvestmentHub/infra/cache"
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/ledger"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/market"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/user"
	"github.com/anshgandhiii/InvestmentHub/pkg/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Command
	}{
		{
			name: "simple buy",
			text: "buy 5 AAPL",
			want: []Command{{Type: domain.TradeBuy, Quantity: 5, Symbol: "AAPL"}},
		},
		{
			name: "shares of form",
			text: "please sell 10 shares of IBM for me",
			want: []Command{{Type: domain.TradeSell, Quantity: 10, Symbol: "IBM"}},
		},
		{
			name: "shares without of",
			text: "Buy 3 shares TSLA",
			want: []Command{{Type: domain.TradeBuy, Quantity: 3, Symbol: "TSLA"}},
		},
		{
			name: "mixed case and multiple commands",
			text: "BUY 2 msft then Sell 1 GOOG",
			want: []Command{
				{Type: domain.TradeBuy, Quantity: 2, Symbol: "MSFT"},
				{Type: domain.TradeSell, Quantity: 1, Symbol: "GOOG"},
			},
		},
		{
			name: "no command in plain question",
			text: "what do you think about the market today?",
			want: nil,
		},
		{
			name: "missing quantity yields nothing",
			text: "buy AAPL",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommands(tt.text))
		})
	}
}

func TestWantsPortfolio(t *testing.T) {
	assert.True(t, wantsPortfolio("show me my Portfolio please"))
	assert.False(t, wantsPortfolio("buy 5 AAPL"))
}

type stubModel struct {
	lastPrompt string
	reply      string
	err        error
}

func (m *stubModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type fixedQuotes struct{ price decimal.Decimal }

func (q fixedQuotes) Quote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	return q.price, nil
}

func newTestAgent(t *testing.T, model *stubModel) (*Service, *testutils.MemoryUoW, uuid.UUID) {
	t.Helper()
	uow := testutils.NewMemoryUoW()
	userID := uow.SeedUser("trader", "trader@example.com", "password123")

	deps := testutils.NewTestDeps(uow)
	deps.Model = model
	deps.Quotes = fixedQuotes{price: decimal.RequireFromString("100")}
	deps.QuoteCache = cache.NewMemoryQuoteCache()
	deps.Config.Market = config.MarketConfig{CacheTTL: time.Minute, HTTPTimeout: time.Second}

	ledgerSvc := ledger.NewService(deps)
	marketSvc := market.NewService(deps)
	userSvc := user.NewService(deps)
	return NewService(deps, ledgerSvc, marketSvc, userSvc), uow, userID
}

func TestChatExecutesParsedTrade(t *testing.T) {
	model := &stubModel{reply: "Done."}
	svc, uow, userID := newTestAgent(t, model)

	content, err := svc.Chat(context.Background(), userID, "buy 5 AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Done.", content)

	// The trade went through the real ledger.
	acct := uow.Account(userID)
	assert.True(t, acct.Real.Balance.Equal(decimal.RequireFromString("9500")))

	// The model saw the outcome and the user's risk tolerance.
	assert.Contains(t, model.lastPrompt, "Executed buy of 5 AAPL")
	assert.Contains(t, model.lastPrompt, "risk tolerance is medium")
	assert.Contains(t, model.lastPrompt, "User: buy 5 AAPL")
}

func TestChatReportsFailedTradeAsText(t *testing.T) {
	model := &stubModel{reply: "Sorry."}
	svc, uow, userID := newTestAgent(t, model)

	_, err := svc.Chat(context.Background(), userID, "sell 5 AAPL")
	require.NoError(t, err)

	// Nothing held, so the sell failed; balance untouched, failure surfaced
	// to the model instead of the caller.
	acct := uow.Account(userID)
	assert.True(t, acct.Real.Balance.Equal(domain.StartingBalance))
	assert.Contains(t, model.lastPrompt, "Failed to sell 5 AAPL")
}

func TestChatPortfolioSummary(t *testing.T) {
	model := &stubModel{reply: "Here you go."}
	svc, _, userID := newTestAgent(t, model)

	_, err := svc.Chat(context.Background(), userID, "buy 2 AAPL and show my portfolio")
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt, "AAPL: 2 shares")
}

func TestChatModelFailure(t *testing.T) {
	model := &stubModel{err: errors.New("model unavailable")}
	svc, _, userID := newTestAgent(t, model)

	_, err := svc.Chat(context.Background(), userID, "hello")
	require.Error(t, err)
}
