package persistence

import (
	"context"

	appledger "github.com/tradecore/backend/internal/application/ledger"
	"github.com/tradecore/backend/internal/domain/ledger"
	"gorm.io/gorm"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using
// GORM transactions. Posting an entry and checking solvency run inside the
// same transaction, so a failed funds check rolls the entry back.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope.
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormLedgerTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormLedgerTransactionalRepositories provides access to the ledger
// repositories within a transaction.
type gormLedgerTransactionalRepositories struct {
	tx *gorm.DB
}

// AccountRepo returns the account repository scoped to the current transaction.
func (r *gormLedgerTransactionalRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

// EntryRepo returns the entry repository scoped to the current transaction.
func (r *gormLedgerTransactionalRepositories) EntryRepo() ledger.EntryRepository {
	return NewGormEntryRepository(r.tx)
}

// Ensure GormLedgerTransactionScope implements TransactionScope
var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)

// Ensure gormLedgerTransactionalRepositories implements TransactionalRepositories
var _ appledger.TransactionalRepositories = (*gormLedgerTransactionalRepositories)(nil)
