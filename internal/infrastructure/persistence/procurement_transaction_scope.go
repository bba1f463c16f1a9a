package persistence

import (
	"context"

	appproc "github.com/tradecore/backend/internal/application/procurement"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
	"gorm.io/gorm"
)

// GormProcurementTransactionScope implements the procurement TransactionScope
// using GORM transactions. Applying a goods receipt and approving a payment
// write across contexts (stock, serials, ledger) and commit or roll back as
// one unit.
type GormProcurementTransactionScope struct {
	db *gorm.DB
}

// NewGormProcurementTransactionScope creates a new GormProcurementTransactionScope.
func NewGormProcurementTransactionScope(db *gorm.DB) *GormProcurementTransactionScope {
	return &GormProcurementTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormProcurementTransactionScope) Execute(ctx context.Context, fn func(repos appproc.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormProcurementTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormProcurementTransactionalRepositories provides access to the
// repositories a procurement effect touches within a transaction.
type gormProcurementTransactionalRepositories struct {
	tx *gorm.DB
}

// QuotationRepo returns the quotation repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) QuotationRepo() procurement.QuotationRepository {
	return NewGormQuotationRepository(r.tx)
}

// ReceiptRepo returns the goods receipt repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) ReceiptRepo() procurement.GoodsReceiptRepository {
	return NewGormGoodsReceiptRepository(r.tx)
}

// OrderRepo returns the purchase order repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) OrderRepo() procurement.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) PaymentRepo() procurement.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// SerialRepo returns the product serial repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) SerialRepo() catalog.ProductSerialRepository {
	return NewGormProductSerialRepository(r.tx)
}

// LotRepo returns the stock lot repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) LotRepo() inventory.StockLotRepository {
	return NewGormStockLotRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// AccountRepo returns the ledger account repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

// EntryRepo returns the ledger entry repository scoped to the current transaction.
func (r *gormProcurementTransactionalRepositories) EntryRepo() ledger.EntryRepository {
	return NewGormEntryRepository(r.tx)
}

// Ensure GormProcurementTransactionScope implements TransactionScope
var _ appproc.TransactionScope = (*GormProcurementTransactionScope)(nil)

// Ensure gormProcurementTransactionalRepositories implements TransactionalRepositories
var _ appproc.TransactionalRepositories = (*gormProcurementTransactionalRepositories)(nil)
