package persistence

import (
	"context"

	appinv "github.com/tradecore/backend/internal/application/inventory"
	"github.com/tradecore/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. It provides atomic execution of multiple
// repository operations.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope.
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormInventoryTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormInventoryTransactionalRepositories provides access to the inventory
// repositories within a transaction.
type gormInventoryTransactionalRepositories struct {
	tx *gorm.DB
}

// LotRepo returns the stock lot repository scoped to the current transaction.
func (r *gormInventoryTransactionalRepositories) LotRepo() inventory.StockLotRepository {
	return NewGormStockLotRepository(r.tx)
}

// MovementRepo returns the movement repository scoped to the current transaction.
func (r *gormInventoryTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// AdjustmentRepo returns the adjustment repository scoped to the current transaction.
func (r *gormInventoryTransactionalRepositories) AdjustmentRepo() inventory.AdjustmentRepository {
	return NewGormAdjustmentRepository(r.tx)
}

// Ensure GormInventoryTransactionScope implements TransactionScope
var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)

// Ensure gormInventoryTransactionalRepositories implements TransactionalRepositories
var _ appinv.TransactionalRepositories = (*gormInventoryTransactionalRepositories)(nil)
