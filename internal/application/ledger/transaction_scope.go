package ledger

import (
	"context"

	"github.com/tradecore/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to ledger repositories.
// Posting an entry and checking solvency must happen atomically: if the funds
// check fails, the appended entry is rolled back with the transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to ledger repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// AccountRepo returns the account repository scoped to the current transaction
	AccountRepo() ledger.AccountRepository
	// EntryRepo returns the entry repository scoped to the current transaction
	EntryRepo() ledger.EntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	accountRepo ledger.AccountRepository
	entryRepo   ledger.EntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo ledger.AccountRepository,
	entryRepo ledger.EntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// AccountRepo returns the account repository.
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository {
	return s.accountRepo
}

// EntryRepo returns the entry repository.
func (s *NoOpTransactionScope) EntryRepo() ledger.EntryRepository {
	return s.entryRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
