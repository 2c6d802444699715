// Package ledger implements the trade engine: validation, balance and
// holding mutation, FIFO cost reconstruction on sells, and the append-only
// transaction log. The same engine serves the real and virtual ledgers;
// the scope on the request selects which state it targets.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeRequest is a trade as received from the HTTP layer (or the agent).
// Price, Quantity, Type and AssetClass arrive as raw strings; the engine
// owns their validation so no caller can bypass it.
type TradeRequest struct {
	UserID     uuid.UUID
	Symbol     string
	Price      string
	Quantity   string
	Type       string
	AssetClass string
	Scope      domain.Scope
}

// Service is the ledger engine. All mutation runs inside a single unit of
// work: the account row is locked for the duration, and the account update,
// holding upsert/delete and transaction append commit or roll back together.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a ledger Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// Execute validates and executes a trade, returning the appended
// transaction record. Sell responses carry the FIFO profit/loss.
func (s *Service) Execute(ctx context.Context, req TradeRequest) (rec *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"user_id", req.UserID,
		"symbol", req.Symbol,
		"type", req.Type,
		"scope", req.Scope,
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accounts.GetByUserID(ctx, req.UserID, true)
		if err != nil {
			return err
		}

		price, quantity, err := validate(req)
		if err != nil {
			return err
		}
		amount := price.Mul(decimal.NewFromInt(quantity))

		holdings, err := uow.HoldingRepository(req.Scope)
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository(req.Scope)
		if err != nil {
			return err
		}

		state := acct.State(req.Scope)
		class := domain.AssetClass(req.AssetClass)
		var profitLoss *decimal.Decimal

		switch domain.TradeType(req.Type) {
		case domain.TradeBuy:
			if !state.CanAfford(amount) {
				return domain.ErrInsufficientFunds
			}
			state.ApplyBuy(amount, class)
			if err := upsertHolding(ctx, holdings, req.UserID, req.Symbol, quantity); err != nil {
				return err
			}
		case domain.TradeSell:
			holding, err := holdings.Get(ctx, req.UserID, req.Symbol)
			if err != nil {
				return err
			}
			if holding.Quantity < quantity {
				return domain.ErrInsufficientHoldings
			}
			pl, err := s.profitLoss(ctx, transactions, req.UserID, req.Symbol, quantity, amount)
			if err != nil {
				return err
			}
			profitLoss = &pl
			state.ApplySell(amount, class)
			if err := reduceHolding(ctx, holdings, holding, quantity); err != nil {
				return err
			}
		}

		if err := accounts.UpdateState(ctx, req.UserID, req.Scope, state); err != nil {
			return err
		}
		rec, err = transactions.Append(ctx, dto.TransactionCreate{
			UserID:   req.UserID,
			Symbol:   req.Symbol,
			Quantity: quantity,
			Type:     domain.TradeType(req.Type),
			Price:    price,
			Amount:   amount,
		})
		if err != nil {
			return err
		}
		rec.ProfitLoss = profitLoss
		return nil
	})
	if err != nil {
		logger.Error("trade rejected", "error", err)
		return nil, err
	}
	logger.Info("trade executed", "transaction_id", rec.ID, "amount", rec.Amount)
	return rec, nil
}

// profitLoss reconstructs the cost basis of a sell by replaying the buy
// history oldest-first. The replay is recomputed fresh from the immutable
// log on every sell; consumed quantity is not carried between sells. That
// is an accepted approximation of lot tracking, consistent because each
// sell is compared against the full current buy history.
func (s *Service) profitLoss(
	ctx context.Context,
	transactions repository.TransactionRepository,
	userID uuid.UUID,
	symbol string,
	quantity int64,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	buys, err := transactions.ListBuys(ctx, userID, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	remaining := quantity
	totalCost := decimal.Zero
	for _, buy := range buys {
		if remaining <= 0 {
			break
		}
		qtyToUse := min(remaining, buy.Quantity)
		totalCost = totalCost.Add(buy.Price.Mul(decimal.NewFromInt(qtyToUse)))
		remaining -= qtyToUse
	}
	return amount.Sub(totalCost).Round(2), nil
}

// Portfolio returns the current holdings for one scope. Returns
// ErrAccountNotFound when the user has no account.
func (s *Service) Portfolio(ctx context.Context, userID uuid.UUID, scope domain.Scope) (out []dto.HoldingRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err = accounts.GetByUserID(ctx, userID, false); err != nil {
			return err
		}
		holdings, err := uow.HoldingRepository(scope)
		if err != nil {
			return err
		}
		out, err = holdings.ListByUser(ctx, userID)
		return err
	})
	return out, err
}

// Transactions returns the transaction history for one scope.
func (s *Service) Transactions(ctx context.Context, userID uuid.UUID, scope domain.Scope) (out []dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err = accounts.GetByUserID(ctx, userID, false); err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository(scope)
		if err != nil {
			return err
		}
		out, err = transactions.ListByUser(ctx, userID)
		return err
	})
	return out, err
}

// validate checks field presence and formats in the order the contract
// fixes: presence (naming every missing field), positive decimal price,
// positive integer quantity, known trade type.
func validate(req TradeRequest) (price decimal.Decimal, quantity int64, err error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"asset_symbol", req.Symbol},
		{"price", req.Price},
		{"quantity", req.Quantity},
		{"transaction_type", req.Type},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, fieldName(f.name, req.Scope))
		}
	}
	if len(missing) > 0 {
		return price, 0, fmt.Errorf(
			"%w: missing required fields: [%s]",
			domain.ErrInvalidRequest, strings.Join(missing, " "),
		)
	}

	price, err = decimal.NewFromString(req.Price)
	if err != nil || !price.IsPositive() {
		return price, 0, fmt.Errorf(
			"%w: %s must be a positive number",
			domain.ErrInvalidRequest, fieldName("price", req.Scope),
		)
	}
	quantity, err = strconv.ParseInt(req.Quantity, 10, 64)
	if err != nil || quantity <= 0 {
		return price, 0, fmt.Errorf(
			"%w: %s must be a positive integer",
			domain.ErrInvalidRequest, fieldName("quantity", req.Scope),
		)
	}
	if !domain.TradeType(req.Type).Valid() {
		return price, 0, fmt.Errorf(
			"%w: invalid %s",
			domain.ErrInvalidRequest, fieldName("transaction_type", req.Scope),
		)
	}
	return price, quantity, nil
}

// fieldName returns the wire name of a trade field for the given scope;
// the virtual endpoint prefixes every field.
func fieldName(name string, scope domain.Scope) string {
	if scope == domain.ScopeVirtual {
		return "virtual_" + name
	}
	return name
}

func upsertHolding(
	ctx context.Context,
	holdings repository.HoldingRepository,
	userID uuid.UUID,
	symbol string,
	quantity int64,
) error {
	holding, err := holdings.Get(ctx, userID, symbol)
	switch {
	case err == nil:
		return holdings.Upsert(ctx, dto.HoldingUpsert{
			UserID:   userID,
			Symbol:   symbol,
			Quantity: holding.Quantity + quantity,
		})
	case errors.Is(err, domain.ErrHoldingNotFound):
		return holdings.Upsert(ctx, dto.HoldingUpsert{
			UserID:   userID,
			Symbol:   symbol,
			Quantity: quantity,
		})
	default:
		return err
	}
}

// reduceHolding decrements the holding, deleting the row when the quantity
// reaches exactly zero. A zero-quantity holding is never persisted.
func reduceHolding(
	ctx context.Context,
	holdings repository.HoldingRepository,
	holding *dto.HoldingRead,
	quantity int64,
) error {
	left := holding.Quantity - quantity
	if left == 0 {
		return holdings.Delete(ctx, holding.UserID, holding.Symbol)
	}
	return holdings.Upsert(ctx, dto.HoldingUpsert{
		UserID:   holding.UserID,
		Symbol:   holding.Symbol,
		Quantity: left,
	})
}
