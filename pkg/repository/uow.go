package repository

import (
	"context"

	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
)

// UnitOfWork is the transaction boundary for ledger mutations. Do runs fn
// inside one database transaction; every repository obtained from the
// UnitOfWork passed to fn is bound to that transaction, so an error
// anywhere rolls back the account update, the holding upsert/delete and
// the transaction append together.
//
// Holding and transaction repositories are scope-bound: the scope selects
// the real tables or their virtual_ shadows. The engine itself never
// branches on scope.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (UserRepository, error)
	AccountRepository() (AccountRepository, error)
	AssetRepository() (AssetRepository, error)
	HoldingRepository(scope domain.Scope) (HoldingRepository, error)
	TransactionRepository(scope domain.Scope) (TransactionRepository, error)
}
