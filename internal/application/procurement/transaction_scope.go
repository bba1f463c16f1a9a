package procurement

import (
	"context"

	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
)

// TransactionScope provides transactional access to the repositories a
// procurement effect touches. Applying a goods receipt and approving a
// payment both write across contexts (stock, serials, ledger) and must commit
// or roll back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// QuotationRepo returns the quotation repository scoped to the current transaction
	QuotationRepo() procurement.QuotationRepository
	// ReceiptRepo returns the goods receipt repository scoped to the current transaction
	ReceiptRepo() procurement.GoodsReceiptRepository
	// OrderRepo returns the purchase order repository scoped to the current transaction
	OrderRepo() procurement.PurchaseOrderRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() procurement.PaymentRepository
	// SerialRepo returns the product serial repository scoped to the current transaction
	SerialRepo() catalog.ProductSerialRepository
	// LotRepo returns the stock lot repository scoped to the current transaction
	LotRepo() inventory.StockLotRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
	// AccountRepo returns the ledger account repository scoped to the current transaction
	AccountRepo() ledger.AccountRepository
	// EntryRepo returns the ledger entry repository scoped to the current transaction
	EntryRepo() ledger.EntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	quotationRepo procurement.QuotationRepository
	receiptRepo   procurement.GoodsReceiptRepository
	orderRepo     procurement.PurchaseOrderRepository
	paymentRepo   procurement.PaymentRepository
	serialRepo    catalog.ProductSerialRepository
	lotRepo       inventory.StockLotRepository
	movementRepo  inventory.StockMovementRepository
	accountRepo   ledger.AccountRepository
	entryRepo     ledger.EntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	quotationRepo procurement.QuotationRepository,
	receiptRepo procurement.GoodsReceiptRepository,
	orderRepo procurement.PurchaseOrderRepository,
	paymentRepo procurement.PaymentRepository,
	serialRepo catalog.ProductSerialRepository,
	lotRepo inventory.StockLotRepository,
	movementRepo inventory.StockMovementRepository,
	accountRepo ledger.AccountRepository,
	entryRepo ledger.EntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		quotationRepo: quotationRepo,
		receiptRepo:   receiptRepo,
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		serialRepo:    serialRepo,
		lotRepo:       lotRepo,
		movementRepo:  movementRepo,
		accountRepo:   accountRepo,
		entryRepo:     entryRepo,
	}
}

// Execute runs the function with the configured repositories, without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) QuotationRepo() procurement.QuotationRepository  { return s.quotationRepo }
func (s *NoOpTransactionScope) ReceiptRepo() procurement.GoodsReceiptRepository { return s.receiptRepo }
func (s *NoOpTransactionScope) OrderRepo() procurement.PurchaseOrderRepository  { return s.orderRepo }
func (s *NoOpTransactionScope) PaymentRepo() procurement.PaymentRepository      { return s.paymentRepo }
func (s *NoOpTransactionScope) SerialRepo() catalog.ProductSerialRepository     { return s.serialRepo }
func (s *NoOpTransactionScope) LotRepo() inventory.StockLotRepository           { return s.lotRepo }
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository { return s.movementRepo }
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository           { return s.accountRepo }
func (s *NoOpTransactionScope) EntryRepo() ledger.EntryRepository               { return s.entryRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
