// Package market exposes sentiment and quote lookups.
package market

import (
	marketsvc "github.com/anshgandhiii/InvestmentHub/pkg/service/market"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the market endpoints:
//   - GET /investment/sentiment?asset=SYM : mock sentiment for a symbol.
//   - GET /investment/quote/:symbol       : current price from the market-data provider.
func Routes(app *fiber.App, marketSvc *marketsvc.Service) {
	app.Get("/investment/sentiment", GetSentiment(marketSvc))
	app.Get("/investment/quote/:symbol", GetQuote(marketSvc))
}

// QuoteResponse is the quote lookup result.
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// GetSentiment returns a handler serving the mock sentiment table.
// @Summary Get sentiment
// @Tags market
// @Produce json
// @Param asset query string true "Asset symbol"
// @Success 200 {object} marketsvc.Sentiment
// @Router /investment/sentiment [get]
func GetSentiment(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		symbol := c.Query("asset")
		if symbol == "" {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "asset query parameter is required")
		}
		return c.JSON(marketSvc.GetSentiment(symbol))
	}
}

// GetQuote returns a handler fetching the current price for a symbol.
// @Summary Get quote
// @Tags market
// @Produce json
// @Param symbol path string true "Asset symbol"
// @Success 200 {object} QuoteResponse
// @Failure 503 {object} common.ErrorBody "Market data unavailable"
// @Router /investment/quote/{symbol} [get]
func GetQuote(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		symbol := c.Params("symbol")
		price, err := marketSvc.GetQuote(c.UserContext(), symbol)
		if err != nil {
			log.Errorf("quote lookup failed for %s: %v", symbol, err)
			return common.ErrorJSON(c, fiber.StatusServiceUnavailable, "failed to fetch stock data")
		}
		return c.JSON(QuoteResponse{Symbol: symbol, Price: price.StringFixed(2)})
	}
}
