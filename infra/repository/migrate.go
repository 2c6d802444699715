package repository

import (
	"github.com/anshgandhiii/InvestmentHub/infra/repository/account"
	"github.com/anshgandhiii/InvestmentHub/infra/repository/asset"
	"github.com/anshgandhiii/InvestmentHub/infra/repository/holding"
	"github.com/anshgandhiii/InvestmentHub/infra/repository/transaction"
	"github.com/anshgandhiii/InvestmentHub/infra/repository/user"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema. The holding and transaction
// models are migrated twice, once per scope table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&user.User{}, &account.Account{}, &asset.Asset{}); err != nil {
		return err
	}
	for _, scope := range []domain.Scope{domain.ScopeReal, domain.ScopeVirtual} {
		if err := db.Table(holding.TableFor(scope)).AutoMigrate(&holding.Holding{}); err != nil {
			return err
		}
		if err := db.Table(transaction.TableFor(scope)).AutoMigrate(&transaction.Transaction{}); err != nil {
			return err
		}
	}
	for _, stmt := range []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_holdings_user_symbol ON holdings (user_id, symbol)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_virtual_holdings_user_symbol ON virtual_holdings (user_id, symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_symbol ON transactions (user_id, symbol, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_virtual_transactions_user_symbol ON virtual_transactions (user_id, symbol, created_at)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
