package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/anshgandhiii/InvestmentHub/infra/cache"
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	marketsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/market"
	"github.com/anshgandhiii/InvestmentHub/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuotes struct {
	price decimal.Decimal
	err   error
}

func (q stubQuotes) Quote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if q.err != nil {
		return decimal.Zero, q.err
	}
	return q.price, nil
}

func newTestApp(t *testing.T, quotes stubQuotes) *fiber.App {
	t.Helper()
	deps := testutils.NewTestDeps(testutils.NewMemoryUoW())
	deps.Quotes = quotes
	deps.QuoteCache = cache.NewMemoryQuoteCache()
	deps.Config.Market = config.MarketConfig{CacheTTL: time.Minute, HTTPTimeout: time.Second}
	app := fiber.New()
	Routes(app, marketsvc.NewService(deps))
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetSentimentEndpoint(t *testing.T) {
	app := newTestApp(t, stubQuotes{})

	resp := testutils.MakeRequest(app, "GET", "/investment/sentiment?asset=AAPL", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, 0.72, body["score"])
	assert.Equal(t, "positive", body["label"])
}

func TestGetSentimentEndpointUnknownSymbol(t *testing.T) {
	app := newTestApp(t, stubQuotes{})

	resp := testutils.MakeRequest(app, "GET", "/investment/sentiment?asset=ZZZZ", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "neutral", decode(t, resp)["label"])
}

func TestGetSentimentEndpointRequiresAsset(t *testing.T) {
	app := newTestApp(t, stubQuotes{})

	resp := testutils.MakeRequest(app, "GET", "/investment/sentiment", "", "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "asset query parameter is required", decode(t, resp)["error"])
}

func TestGetQuoteEndpoint(t *testing.T) {
	app := newTestApp(t, stubQuotes{price: decimal.RequireFromString("187.4")})

	resp := testutils.MakeRequest(app, "GET", "/investment/quote/AAPL", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "AAPL", body["symbol"])
	assert.Equal(t, "187.40", body["price"])
}

func TestGetQuoteEndpointProviderDown(t *testing.T) {
	app := newTestApp(t, stubQuotes{err: errors.New("timeout")})

	resp := testutils.MakeRequest(app, "GET", "/investment/quote/AAPL", "", "")
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "failed to fetch stock data", decode(t, resp)["error"])
}
