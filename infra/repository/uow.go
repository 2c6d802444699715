// Package repository implements the persistence boundary over GORM,
// including the unit of work that gives every trade a single transaction
// spanning account, holding and transaction-log writes.
package repository

import (
	"context"
	"fmt"
	"reflect"

	infraaccount "github.com/anshgandhiii/InvestmentHub/infra/repository/account"
	infraasset "github.com/anshgandhiii/InvestmentHub/infra/repository/asset"
	infraholding "github.com/anshgandhiii/InvestmentHub/infra/repository/holding"
	infratransaction "github.com/anshgandhiii/InvestmentHub/infra/repository/transaction"
	infrauser "github.com/anshgandhiii/InvestmentHub/infra/repository/user"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Every repository handed out inside Do is constructed over
// the same transaction session, so the account update, holding
// upsert/delete and transaction append of one trade commit or roll back
// together.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.UserRepository)(nil)).Elem():    func(db *gorm.DB) any { return infrauser.New(db) },
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem(): func(db *gorm.DB) any { return infraaccount.New(db) },
			reflect.TypeOf((*repository.AssetRepository)(nil)).Elem():   func(db *gorm.DB) any { return infraasset.New(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW whose repositories
// share the transaction session. Nested calls reuse the open transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// session returns the transaction when one is open, else the base handle.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) getRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// UserRepository implements repository.UnitOfWork.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	repoAny, err := u.getRepository(reflect.TypeOf((*repository.UserRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.UserRepository), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.getRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// AssetRepository implements repository.UnitOfWork.
func (u *UoW) AssetRepository() (repository.AssetRepository, error) {
	repoAny, err := u.getRepository(reflect.TypeOf((*repository.AssetRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AssetRepository), nil
}

// HoldingRepository implements repository.UnitOfWork. The scope selects
// the real table or its virtual_ shadow.
func (u *UoW) HoldingRepository(scope domain.Scope) (repository.HoldingRepository, error) {
	return infraholding.New(u.session(), scope), nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository(scope domain.Scope) (repository.TransactionRepository, error) {
	return infratransaction.New(u.session(), scope), nil
}
