// Package trade exposes the ledger engine over HTTP: trade execution plus
// portfolio and transaction-history reads, for both the real and virtual
// ledgers. The two route groups run the same handlers parameterized by
// scope; only the wire field names differ.
package trade

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/service/ledger"
	"github.com/anshgandhiii/InvestmentHub/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the trade endpoints:
//   - POST /investment/transactions      : execute a trade on the real ledger.
//   - GET  /investment/transactions/:id  : list the user's transactions.
//   - GET  /investment/portfolio/:id     : list the user's holdings.
//   - POST /virtual/transactions         : execute a paper trade.
//   - GET  /virtual/transactions/:id     : list virtual transactions.
//   - GET  /virtual/portfolio/:id        : list virtual holdings.
func Routes(app *fiber.App, ledgerSvc *ledger.Service) {
	app.Post("/investment/transactions", ExecuteTrade(ledgerSvc))
	app.Get("/investment/transactions/:user_id", ListTransactions(ledgerSvc))
	app.Get("/investment/portfolio/:user_id", GetPortfolio(ledgerSvc))
	app.Post("/virtual/transactions", ExecuteVirtualTrade(ledgerSvc))
	app.Get("/virtual/transactions/:user_id", ListVirtualTransactions(ledgerSvc))
	app.Get("/virtual/portfolio/:user_id", GetVirtualPortfolio(ledgerSvc))
}

// ExecuteTrade returns a handler executing a buy or sell on the real
// ledger.
// @Summary Execute a trade
// @Description Executes a buy or sell against the user's balance and holdings. Sell responses include the FIFO profit/loss.
// @Tags investment
// @Accept json
// @Produce json
// @Param request body TradeRequestBody true "Trade details"
// @Success 201 {object} TransactionResponse "Trade executed"
// @Failure 400 {object} common.ErrorBody "Invalid request or insufficient funds/holdings"
// @Failure 404 {object} common.ErrorBody "Account or holding not found"
// @Router /investment/transactions [post]
func ExecuteTrade(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TradeRequestBody](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		rec, err := ledgerSvc.Execute(c.UserContext(), ledger.TradeRequest{
			UserID:     userID,
			Symbol:     input.AssetSymbol,
			Price:      input.Price.String(),
			Quantity:   input.Quantity.String(),
			Type:       input.TransactionType,
			AssetClass: input.AssetType,
			Scope:      domain.ScopeReal,
		})
		if err != nil {
			log.Errorf("trade failed: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(rec))
	}
}

// ExecuteVirtualTrade returns a handler executing a paper trade on the
// virtual ledger.
// @Summary Execute a virtual trade
// @Tags virtual
// @Accept json
// @Produce json
// @Param request body VirtualTradeRequestBody true "Trade details"
// @Success 201 {object} VirtualTransactionResponse "Trade executed"
// @Failure 400 {object} common.ErrorBody "Invalid request or insufficient funds/holdings"
// @Failure 404 {object} common.ErrorBody "Account or holding not found"
// @Router /virtual/transactions [post]
func ExecuteVirtualTrade(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[VirtualTradeRequestBody](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		rec, err := ledgerSvc.Execute(c.UserContext(), ledger.TradeRequest{
			UserID:     userID,
			Symbol:     input.AssetSymbol,
			Price:      input.Price.String(),
			Quantity:   input.Quantity.String(),
			Type:       input.TransactionType,
			AssetClass: input.AssetType,
			Scope:      domain.ScopeVirtual,
		})
		if err != nil {
			log.Errorf("virtual trade failed: %v", err)
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(toVirtualTransactionResponse(rec))
	}
}

// ListTransactions returns a handler listing the user's real transactions.
// @Summary List transactions
// @Tags investment
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} TransactionResponse
// @Failure 404 {object} common.ErrorBody "Account not found"
// @Router /investment/transactions/{user_id} [get]
func ListTransactions(ledgerSvc *ledger.Service) fiber.Handler {
	return listTransactions(ledgerSvc, domain.ScopeReal)
}

// ListVirtualTransactions returns a handler listing the user's virtual
// transactions.
// @Summary List virtual transactions
// @Tags virtual
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} VirtualTransactionResponse
// @Failure 404 {object} common.ErrorBody "Account not found"
// @Router /virtual/transactions/{user_id} [get]
func ListVirtualTransactions(ledgerSvc *ledger.Service) fiber.Handler {
	return listTransactions(ledgerSvc, domain.ScopeVirtual)
}

func listTransactions(ledgerSvc *ledger.Service, scope domain.Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		records, err := ledgerSvc.Transactions(c.UserContext(), userID, scope)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		if scope == domain.ScopeVirtual {
			out := make([]VirtualTransactionResponse, 0, len(records))
			for i := range records {
				out = append(out, toVirtualTransactionResponse(&records[i]))
			}
			return c.JSON(out)
		}
		out := make([]TransactionResponse, 0, len(records))
		for i := range records {
			out = append(out, toTransactionResponse(&records[i]))
		}
		return c.JSON(out)
	}
}

// GetPortfolio returns a handler listing the user's real holdings.
// @Summary Get portfolio
// @Tags investment
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} HoldingResponse
// @Failure 404 {object} common.ErrorBody "Account not found"
// @Router /investment/portfolio/{user_id} [get]
func GetPortfolio(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		holdings, err := ledgerSvc.Portfolio(c.UserContext(), userID, domain.ScopeReal)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		out := make([]HoldingResponse, 0, len(holdings))
		for _, h := range holdings {
			out = append(out, HoldingResponse{AssetSymbol: h.Symbol, Quantity: h.Quantity})
		}
		return c.JSON(out)
	}
}

// GetVirtualPortfolio returns a handler listing the user's virtual
// holdings.
// @Summary Get virtual portfolio
// @Tags virtual
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} VirtualHoldingResponse
// @Failure 404 {object} common.ErrorBody "Account not found"
// @Router /virtual/portfolio/{user_id} [get]
func GetVirtualPortfolio(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "invalid user_id")
		}
		holdings, err := ledgerSvc.Portfolio(c.UserContext(), userID, domain.ScopeVirtual)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		out := make([]VirtualHoldingResponse, 0, len(holdings))
		for _, h := range holdings {
			out = append(out, VirtualHoldingResponse{
				ID:          h.ID.String(),
				UserProfile: h.UserID.String(),
				AssetSymbol: h.Symbol,
				Quantity:    h.Quantity,
			})
		}
		return c.JSON(out)
	}
}
