package trade

import (
	"encoding/json"

	"github.com/anshgandhiii/InvestmentHub/pkg/dto"
)

// TradeRequestBody is the trade payload on the real endpoint. Price and
// quantity arrive as JSON numbers or strings; the engine owns their
// validation, so they are passed through raw.
type TradeRequestBody struct {
	UserID          string      `json:"user_id" validate:"required,uuid4"`
	AssetSymbol     string      `json:"asset_symbol"`
	Price           json.Number `json:"price"`
	Quantity        json.Number `json:"quantity"`
	TransactionType string      `json:"transaction_type"`
	AssetType       string      `json:"asset_type"`
}

// VirtualTradeRequestBody is the trade payload on the virtual endpoint,
// with every field virtual_ prefixed.
type VirtualTradeRequestBody struct {
	UserID          string      `json:"user_id" validate:"required,uuid4"`
	AssetSymbol     string      `json:"virtual_asset_symbol"`
	Price           json.Number `json:"virtual_price"`
	Quantity        json.Number `json:"virtual_quantity"`
	TransactionType string      `json:"virtual_transaction_type"`
	AssetType       string      `json:"virtual_asset_type"`
}

// TransactionResponse is the serialized transaction on the real endpoint.
// Decimal fields are strings on the wire. ProfitLoss is present on sell
// responses only.
type TransactionResponse struct {
	ID              string  `json:"id"`
	UserProfile     string  `json:"user_profile"`
	AssetSymbol     string  `json:"asset_symbol"`
	Quantity        int64   `json:"quantity"`
	TransactionType string  `json:"transaction_type"`
	Price           string  `json:"price"`
	Amount          string  `json:"amount"`
	CreatedAt       string  `json:"created_at"`
	ProfitLoss      *string `json:"profit_loss,omitempty"`
}

// VirtualTransactionResponse is the virtual-endpoint serialization.
type VirtualTransactionResponse struct {
	ID              string  `json:"id"`
	UserProfile     string  `json:"user_profile"`
	AssetSymbol     string  `json:"virtual_asset_symbol"`
	Quantity        int64   `json:"virtual_quantity"`
	TransactionType string  `json:"virtual_transaction_type"`
	Price           string  `json:"virtual_price"`
	Amount          string  `json:"virtual_amount"`
	CreatedAt       string  `json:"virtual_created_at"`
	ProfitLoss      *string `json:"virtual_profit_loss,omitempty"`
}

// HoldingResponse is one portfolio entry on the real endpoint.
type HoldingResponse struct {
	AssetSymbol string `json:"asset_symbol"`
	Quantity    int64  `json:"quantity"`
}

// VirtualHoldingResponse is one portfolio entry on the virtual endpoint.
type VirtualHoldingResponse struct {
	ID          string `json:"id"`
	UserProfile string `json:"user_profile"`
	AssetSymbol string `json:"virtual_asset_symbol"`
	Quantity    int64  `json:"virtual_quantity"`
}

func toTransactionResponse(t *dto.TransactionRead) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID.String(),
		UserProfile:     t.UserID.String(),
		AssetSymbol:     t.Symbol,
		Quantity:        t.Quantity,
		TransactionType: string(t.Type),
		Price:           t.Price.StringFixed(2),
		Amount:          t.Amount.StringFixed(2),
		CreatedAt:       t.CreatedAt.Format("2006-01-02T15:04:05.000000Z07:00"),
	}
	if t.ProfitLoss != nil {
		pl := t.ProfitLoss.StringFixed(2)
		resp.ProfitLoss = &pl
	}
	return resp
}

func toVirtualTransactionResponse(t *dto.TransactionRead) VirtualTransactionResponse {
	r := toTransactionResponse(t)
	return VirtualTransactionResponse{
		ID:              r.ID,
		UserProfile:     r.UserProfile,
		AssetSymbol:     r.AssetSymbol,
		Quantity:        r.Quantity,
		TransactionType: r.TransactionType,
		Price:           r.Price,
		Amount:          r.Amount,
		CreatedAt:       r.CreatedAt,
		ProfitLoss:      r.ProfitLoss,
	}
}
