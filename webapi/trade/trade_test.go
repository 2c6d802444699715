package trade

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/anshgandhiii/InvestmentHub/pkg/service/ledger"
	"github.com/anshgandhiii/InvestmentHub/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *testutils.MemoryUoW, uuid.UUID) {
	t.Helper()
	uow := testutils.NewMemoryUoW()
	userID := uow.SeedUser("trader", "trader@example.com", "password123")
	app := fiber.New()
	Routes(app, ledger.NewService(testutils.NewTestDeps(uow)))
	return app, uow, userID
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func tradeBody(userID uuid.UUID, symbol, price, qty, typ string) string {
	return fmt.Sprintf(
		`{"user_id":%q,"asset_symbol":%q,"price":%s,"quantity":%s,"transaction_type":%q,"asset_type":"stock"}`,
		userID, symbol, price, qty, typ,
	)
}

func TestExecuteTradeBuy(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "150.50", "10", "buy"), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, userID.String(), body["user_profile"])
	assert.Equal(t, "AAPL", body["asset_symbol"])
	assert.EqualValues(t, 10, body["quantity"])
	assert.Equal(t, "buy", body["transaction_type"])
	assert.Equal(t, "150.50", body["price"])
	assert.Equal(t, "1505.00", body["amount"])
	assert.NotContains(t, body, "profit_loss")
}

func TestExecuteTradeSellCarriesProfitLoss(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "5", "10", "buy"), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "8", "10", "sell"), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, "30.00", body["profit_loss"])
}

func TestExecuteTradeStringNumbersAccepted(t *testing.T) {
	app, _, userID := newTestApp(t)

	// Price and quantity may arrive as JSON strings.
	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", `"99.95"`, `"2"`, "buy"), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "199.90", decodeMap(t, resp)["amount"])
}

func TestExecuteTradeInsufficientFunds(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "101", "100", "buy"), "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "insufficient balance", decodeMap(t, resp)["error"])
}

func TestExecuteTradeSellWithoutHolding(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "10", "1", "sell"), "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "portfolio entry not found", decodeMap(t, resp)["error"])
}

func TestExecuteTradeUnknownAccount(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(uuid.New(), "AAPL", "10", "1", "buy"), "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "user profile not found", decodeMap(t, resp)["error"])
}

func TestExecuteTradeMissingFields(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		fmt.Sprintf(`{"user_id":%q}`, userID), "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"],
		"missing required fields: [asset_symbol price quantity transaction_type]")
}

func TestExecuteTradeBadUserID(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		`{"user_id":"not-a-uuid","asset_symbol":"AAPL","price":10,"quantity":1,"transaction_type":"buy"}`, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListTransactionsAndPortfolio(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/investment/transactions",
		tradeBody(userID, "AAPL", "10", "3", "buy"), "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = testutils.MakeRequest(app, "GET", "/investment/transactions/"+userID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	txs := decodeList(t, resp)
	require.Len(t, txs, 1)
	assert.Equal(t, "AAPL", txs[0]["asset_symbol"])

	resp = testutils.MakeRequest(app, "GET", "/investment/portfolio/"+userID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	holdings := decodeList(t, resp)
	require.Len(t, holdings, 1)
	assert.Equal(t, "AAPL", holdings[0]["asset_symbol"])
	assert.EqualValues(t, 3, holdings[0]["quantity"])
}

func TestPortfolioUnknownUser(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := testutils.MakeRequest(app, "GET", "/investment/portfolio/"+uuid.NewString(), "", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "user profile not found", decodeMap(t, resp)["error"])
}

func TestVirtualTradeWireFormat(t *testing.T) {
	app, _, userID := newTestApp(t)

	body := fmt.Sprintf(
		`{"user_id":%q,"virtual_asset_symbol":"TSLA","virtual_price":200,"virtual_quantity":2,"virtual_transaction_type":"buy","virtual_asset_type":"stock"}`,
		userID,
	)
	resp := testutils.MakeRequest(app, "POST", "/virtual/transactions", body, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decodeMap(t, resp)
	assert.Equal(t, "TSLA", out["virtual_asset_symbol"])
	assert.EqualValues(t, 2, out["virtual_quantity"])
	assert.Equal(t, "buy", out["virtual_transaction_type"])
	assert.Equal(t, "400.00", out["virtual_amount"])

	resp = testutils.MakeRequest(app, "GET", "/virtual/portfolio/"+userID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	holdings := decodeList(t, resp)
	require.Len(t, holdings, 1)
	assert.Equal(t, "TSLA", holdings[0]["virtual_asset_symbol"])
	assert.EqualValues(t, 2, holdings[0]["virtual_quantity"])
	assert.Contains(t, holdings[0], "id")
	assert.Equal(t, userID.String(), holdings[0]["user_profile"])
}

func TestVirtualTradeMissingFieldsUsePrefixedNames(t *testing.T) {
	app, _, userID := newTestApp(t)

	resp := testutils.MakeRequest(app, "POST", "/virtual/transactions",
		fmt.Sprintf(`{"user_id":%q}`, userID), "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeMap(t, resp)["error"],
		"missing required fields: [virtual_asset_symbol virtual_price virtual_quantity virtual_transaction_type]")
}

func TestVirtualAndRealLedgersAreSeparate(t *testing.T) {
	app, uow, userID := newTestApp(t)

	body := fmt.Sprintf(
		`{"user_id":%q,"virtual_asset_symbol":"TSLA","virtual_price":100,"virtual_quantity":1,"virtual_transaction_type":"buy","virtual_asset_type":"stock"}`,
		userID,
	)
	resp := testutils.MakeRequest(app, "POST", "/virtual/transactions", body, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	acct := uow.Account(userID)
	assert.Equal(t, "10000", acct.Real.Balance.String())
	assert.Equal(t, "9900", acct.Virtual.Balance.String())

	resp = testutils.MakeRequest(app, "GET", "/investment/portfolio/"+userID.String(), "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))
}
