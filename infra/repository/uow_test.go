package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anshgandhiii/InvestmentHub/pkg/domain"
	"github.com/anshgandhiii/InvestmentHub/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestUoWDoCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		users, err := txUow.UserRepository()
		require.NoError(t, err)
		assert.NotNil(t, users)

		accounts, err := txUow.AccountRepository()
		require.NoError(t, err)
		assert.NotNil(t, accounts)

		assets, err := txUow.AssetRepository()
		require.NoError(t, err)
		assert.NotNil(t, assets)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoWDoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoWNestedDoReusesTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	// Only the outer Do opens a transaction.
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(outer repository.UnitOfWork) error {
		return outer.Do(context.Background(), func(inner repository.UnitOfWork) error {
			holdings, err := inner.HoldingRepository(domain.ScopeVirtual)
			require.NoError(t, err)
			assert.NotNil(t, holdings)
			return nil
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoWScopedRepositories(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	for _, scope := range []domain.Scope{domain.ScopeReal, domain.ScopeVirtual} {
		holdings, err := uow.HoldingRepository(scope)
		require.NoError(t, err)
		assert.NotNil(t, holdings)

		transactions, err := uow.TransactionRepository(scope)
		require.NoError(t, err)
		assert.NotNil(t, transactions)
	}
}
