package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewLedgerState(t *testing.T) {
	s := NewLedgerState()
	assert.True(t, s.Balance.Equal(d("10000")))
	assert.True(t, s.BoughtSum.IsZero())
	assert.True(t, s.StocksTotal.IsZero())
	assert.True(t, s.BondsTotal.IsZero())
	assert.True(t, s.InsuranceTotal.IsZero())
}

func TestCanAfford(t *testing.T) {
	s := NewLedgerState()
	assert.True(t, s.CanAfford(d("10000")))
	assert.True(t, s.CanAfford(d("9999.99")))
	assert.False(t, s.CanAfford(d("10000.01")))
}

func TestApplyBuy(t *testing.T) {
	s := NewLedgerState()
	s.ApplyBuy(d("1500"), ClassStock)
	assert.True(t, s.Balance.Equal(d("8500")))
	assert.True(t, s.BoughtSum.Equal(d("1500")))
	assert.True(t, s.StocksTotal.Equal(d("1500")))
	assert.True(t, s.BondsTotal.IsZero())

	s.ApplyBuy(d("500"), ClassBond)
	assert.True(t, s.Balance.Equal(d("8000")))
	assert.True(t, s.BoughtSum.Equal(d("2000")))
	assert.True(t, s.BondsTotal.Equal(d("500")))
}

func TestApplyBuyUnknownClassAccumulatesInsurance(t *testing.T) {
	s := NewLedgerState()
	s.ApplyBuy(d("300"), AssetClass("crypto"))
	assert.True(t, s.InsuranceTotal.Equal(d("300")))
	assert.True(t, s.StocksTotal.IsZero())
	assert.True(t, s.BondsTotal.IsZero())
}

func TestApplySell(t *testing.T) {
	s := NewLedgerState()
	s.ApplyBuy(d("1000"), ClassStock)
	s.ApplySell(d("400"), ClassStock)
	assert.True(t, s.Balance.Equal(d("9400")))
	assert.True(t, s.BoughtSum.Equal(d("600")))
	assert.True(t, s.StocksTotal.Equal(d("600")))
}

func TestApplySellClampsAtZero(t *testing.T) {
	s := NewLedgerState()
	s.ApplyBuy(d("100"), ClassStock)
	// Selling above cost: balance keeps the full credit, the accumulators
	// clamp instead of going negative.
	s.ApplySell(d("250"), ClassStock)
	assert.True(t, s.Balance.Equal(d("10150")))
	assert.True(t, s.BoughtSum.IsZero())
	assert.True(t, s.StocksTotal.IsZero())

	s.ApplySell(d("50"), ClassBond)
	assert.True(t, s.BondsTotal.IsZero())
	s.ApplySell(d("50"), AssetClass("other"))
	assert.True(t, s.InsuranceTotal.IsZero())
}
