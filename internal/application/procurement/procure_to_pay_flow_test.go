package procurement

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	ledgerapp "github.com/tradecore/backend/internal/application/ledger"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// flowLedger keeps accounts and entries in memory so balances reflect every
// posting made earlier in the flow.
type flowLedger struct {
	mu       sync.Mutex
	accounts map[string]*ledger.Account
	entries  []*ledger.Entry
}

func newFlowLedger(t *testing.T, companyID uuid.UUID, codes ...string) *flowLedger {
	t.Helper()
	l := &flowLedger{accounts: make(map[string]*ledger.Account)}
	for _, code := range codes {
		account, err := ledger.NewAccount(companyID, code, "")
		require.NoError(t, err)
		l.accounts[code] = account
	}
	return l
}

func (l *flowLedger) Save(_ context.Context, account *ledger.Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account.Code] = account
	return nil
}

func (l *flowLedger) FindByCodeForCompany(_ context.Context, _ uuid.UUID, code string) (*ledger.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	account, ok := l.accounts[code]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return account, nil
}

func (l *flowLedger) FindAllForCompany(_ context.Context, _ uuid.UUID) ([]ledger.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]ledger.Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		out = append(out, *account)
	}
	return out, nil
}

func (l *flowLedger) Balance(_ context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := decimal.Zero
	for _, entry := range l.entries {
		for i := range entry.Lines {
			if entry.Lines[i].AccountID == accountID {
				balance = balance.Add(entry.Lines[i].Debit).Sub(entry.Lines[i].Credit)
			}
		}
	}
	return balance, nil
}

// flowEntries exposes the entry side of flowLedger
type flowEntries struct {
	l *flowLedger
}

func (e *flowEntries) Append(_ context.Context, entry *ledger.Entry) error {
	e.l.mu.Lock()
	defer e.l.mu.Unlock()
	e.l.entries = append(e.l.entries, entry)
	return nil
}

func (e *flowEntries) FindByIDForCompany(_ context.Context, _, id uuid.UUID) (*ledger.Entry, error) {
	e.l.mu.Lock()
	defer e.l.mu.Unlock()
	for _, entry := range e.l.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (e *flowEntries) FindAllForCompany(_ context.Context, _ uuid.UUID, _ shared.Filter) (shared.Paginated[ledger.Entry], error) {
	e.l.mu.Lock()
	defer e.l.mu.Unlock()
	items := make([]ledger.Entry, len(e.l.entries))
	for i, entry := range e.l.entries {
		items[i] = *entry
	}
	return shared.Paginated[ledger.Entry]{Items: items, Total: int64(len(items))}, nil
}

func (l *flowLedger) balanceOf(t *testing.T, code string) decimal.Decimal {
	t.Helper()
	account, ok := l.accounts[code]
	require.True(t, ok, "account %s not seeded", code)
	balance, err := l.Balance(context.Background(), account.ID)
	require.NoError(t, err)
	return balance
}

// flowPayments stores payments so advance lookups see earlier approvals
type flowPayments struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*procurement.Payment
}

func newFlowPayments() *flowPayments {
	return &flowPayments{payments: make(map[uuid.UUID]*procurement.Payment)}
}

func (r *flowPayments) FindByID(_ context.Context, id uuid.UUID) (*procurement.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return payment, nil
}

func (r *flowPayments) FindAll(_ context.Context, _ shared.Filter) ([]procurement.Payment, error) {
	return nil, nil
}

func (r *flowPayments) Save(_ context.Context, payment *procurement.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = payment
	return nil
}

func (r *flowPayments) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.payments, id)
	return nil
}

func (r *flowPayments) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.payments)), nil
}

func (r *flowPayments) FindByIDForCompany(_ context.Context, companyID, id uuid.UUID) (*procurement.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[id]
	if !ok || payment.CompanyID != companyID {
		return nil, shared.ErrNotFound
	}
	return payment, nil
}

func (r *flowPayments) FindAllForCompany(_ context.Context, companyID uuid.UUID, _ shared.Filter) ([]procurement.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []procurement.Payment
	for _, payment := range r.payments {
		if payment.CompanyID == companyID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *flowPayments) FindByPurchaseOrder(_ context.Context, companyID, poID uuid.UUID) ([]procurement.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []procurement.Payment
	for _, payment := range r.payments {
		if payment.CompanyID == companyID && payment.PurchaseOrderID == poID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (r *flowPayments) HasApprovedAdvance(_ context.Context, companyID, poID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, payment := range r.payments {
		if payment.CompanyID == companyID && payment.PurchaseOrderID == poID &&
			payment.IsAdvance && payment.Status == procurement.PaymentApproved {
			return true, nil
		}
	}
	return false, nil
}

// TestProcureToPayFlow walks one order from requisition to settled payment.
// BuyCo opens with 1000 in Cash, pays a 200 cash advance, receives one unit
// priced at 1000 and settles the remaining 800. Every posting must leave the
// Cash account non-negative.
func TestProcureToPayFlow(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	requesterID := uuid.New()
	approverID := uuid.New()

	books := newFlowLedger(t, companyID,
		ledger.AccountCash,
		ledger.AccountBank,
		ledger.AccountSupplier,
		ledger.AccountSupplierAdvance,
		ledger.AccountInventory,
		"Opening Balance",
	)
	entries := &flowEntries{books}
	_, err := ledgerapp.PostEntry(ctx, books, entries, companyID, "Opening balance",
		[]ledger.LineSpec{
			{AccountCode: ledger.AccountCash, Debit: decimal.NewFromInt(1000)},
			{AccountCode: "Opening Balance", Credit: decimal.NewFromInt(1000)},
		})
	require.NoError(t, err)

	payments := newFlowPayments()

	supplierRepo := new(MockSupplierRepository)
	requisitionRepo := new(MockRequisitionRepository)
	quotationRepo := new(MockQuotationRepository)
	orderRepo := new(MockPurchaseOrderRepository)
	receiptRepo := new(MockGoodsReceiptRepository)
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	warehouseRepo := new(MockWarehouseRepository)
	serialRepo := new(MockProductSerialRepository)
	lotRepo := new(MockStockLotRepository)
	movementRepo := new(MockStockMovementRepository)
	invoiceRepo := new(MockInvoiceRepository)

	scope := NewNoOpTransactionScope(quotationRepo, receiptRepo, orderRepo, payments,
		serialRepo, lotRepo, movementRepo, books, entries)

	requisitionService := NewRequisitionService(requisitionRepo, zap.NewNop())
	quotationService := NewQuotationService(quotationRepo, supplierRepo, requisitionRepo, orderRepo, scope, zap.NewNop())
	orderService := NewOrderService(orderRepo, zap.NewNop())
	receivingService := NewReceivingService(productRepo, categoryRepo, warehouseRepo, scope, zap.NewNop())
	invoiceService := NewInvoiceService(invoiceRepo, orderRepo, receiptRepo, supplierRepo, zap.NewNop())
	paymentService := NewPaymentService(orderRepo, scope, zap.NewNop())

	supplier := mustSupplier(t, companyID)
	product := mustProduct(t, companyID, 1000)
	warehouse := mustWarehouse(t, companyID)

	// Requisition: draft, one item, submitted, approved
	var requisition *procurement.Requisition
	requisitionRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Requisition")).
		Run(func(args mock.Arguments) { requisition = args.Get(1).(*procurement.Requisition) }).
		Return(nil)

	reqResp, err := requisitionService.Create(ctx, companyID, requesterID, CreateRequisitionRequest{
		Title: "Restock widgets",
		Items: []RequisitionItemRequest{{ProductID: product.ID, Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	// The Save hook captured the live aggregate, so later lookups observe
	// every state transition made through it.
	requisitionRepo.On("FindByIDForCompany", ctx, companyID, reqResp.ID).Return(requisition, nil)

	_, err = requisitionService.Submit(ctx, companyID, reqResp.ID)
	require.NoError(t, err)
	_, err = requisitionService.Decide(ctx, companyID, reqResp.ID, approverID, DecideRequest{Decision: "approved"})
	require.NoError(t, err)

	// Quotation against the approved requisition, one line, selected
	var quotation *procurement.QuotationRequest
	quotationRepo.On("Save", ctx, mock.AnythingOfType("*procurement.QuotationRequest")).
		Run(func(args mock.Arguments) { quotation = args.Get(1).(*procurement.QuotationRequest) }).
		Return(nil)
	supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)

	quoteResp, err := quotationService.Create(ctx, companyID, CreateQuotationRequest{
		SupplierID:    supplier.ID,
		RequisitionID: &reqResp.ID,
		Reference:     "RFQ-1001",
		Lines: []QuotationLineRequest{{
			ProductID: product.ID,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(1000),
		}},
	})
	require.NoError(t, err)
	require.Len(t, quoteResp.Lines, 1)

	quotationRepo.On("FindByIDForCompany", ctx, companyID, quoteResp.ID).Return(quotation, nil)
	orderRepo.On("NextOrderSequence", ctx, companyID).Return(1, nil)

	var po *procurement.PurchaseOrder
	orderRepo.On("Save", ctx, mock.AnythingOfType("*procurement.PurchaseOrder")).
		Run(func(args mock.Arguments) { po = args.Get(1).(*procurement.PurchaseOrder) }).
		Return(nil)

	poResp, err := quotationService.SelectLine(ctx, companyID, quoteResp.ID, quoteResp.Lines[0].ID)
	require.NoError(t, err)
	require.Len(t, poResp.Lines, 1)
	assert.True(t, poResp.Total.Equal(decimal.NewFromInt(1000)))

	orderRepo.On("FindByIDForCompany", ctx, companyID, poResp.ID).Return(po, nil)

	_, err = orderService.Submit(ctx, companyID, poResp.ID)
	require.NoError(t, err)
	_, err = orderService.Acknowledge(ctx, companyID, poResp.ID)
	require.NoError(t, err)

	// Advance: 200 in cash, approved, posted
	advanceResp, err := paymentService.Create(ctx, companyID, requesterID, CreatePaymentRequest{
		SupplierID:      supplier.ID,
		PurchaseOrderID: poResp.ID,
		Amount:          decimal.NewFromInt(200),
		Method:          "cash",
		IsAdvance:       true,
	})
	require.NoError(t, err)

	_, err = paymentService.Decide(ctx, companyID, advanceResp.ID, approverID, DecideRequest{Decision: "approved"})
	require.NoError(t, err)

	assert.True(t, books.balanceOf(t, ledger.AccountCash).Equal(decimal.NewFromInt(800)))
	assert.True(t, books.balanceOf(t, ledger.AccountSupplierAdvance).Equal(decimal.NewFromInt(200)))

	// Goods receipt: one unit arrives and the inventory accrual posts
	warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)
	productRepo.On("FindByIDForCompany", ctx, companyID, product.ID).Return(product, nil)
	lotRepo.On("Save", ctx, mock.Anything).Return(nil)
	movementRepo.On("Append", ctx, mock.Anything).Return(nil)

	var receipt *procurement.GoodsReceipt
	receiptRepo.On("Save", ctx, mock.AnythingOfType("*procurement.GoodsReceipt")).
		Run(func(args mock.Arguments) { receipt = args.Get(1).(*procurement.GoodsReceipt) }).
		Return(nil)

	grnResp, err := receivingService.Receive(ctx, companyID, CreateReceiptRequest{
		PurchaseOrderID: poResp.ID,
		OrderLineID:     poResp.Lines[0].ID,
		WarehouseID:     warehouse.ID,
		Quantity:        decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.NotNil(t, grnResp.AppliedAt)

	assert.True(t, books.balanceOf(t, ledger.AccountInventory).Equal(decimal.NewFromInt(1000)))
	assert.True(t, books.balanceOf(t, ledger.AccountSupplier).Equal(decimal.NewFromInt(-1000)))
	assert.True(t, po.Lines[0].Outstanding().IsZero())

	// Invoice for the full order value, approved against received goods
	var invoice *procurement.Invoice
	invoiceRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Invoice")).
		Run(func(args mock.Arguments) { invoice = args.Get(1).(*procurement.Invoice) }).
		Return(nil)

	invResp, err := invoiceService.Create(ctx, companyID, CreateInvoiceRequest{
		SupplierID:      supplier.ID,
		PurchaseOrderID: poResp.ID,
		InvoiceNumber:   "INV-7001",
		Amount:          decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	invoiceRepo.On("FindByIDForCompany", ctx, companyID, invResp.ID).Return(invoice, nil)
	receiptRepo.On("FindByPurchaseOrder", ctx, companyID, poResp.ID).
		Return([]procurement.GoodsReceipt{*receipt}, nil)

	_, err = invoiceService.Approve(ctx, companyID, invResp.ID, approverID)
	require.NoError(t, err)

	// Final payment of 800 draws the 200 advance down and settles in cash
	finalResp, err := paymentService.Create(ctx, companyID, requesterID, CreatePaymentRequest{
		SupplierID:      supplier.ID,
		PurchaseOrderID: poResp.ID,
		Amount:          decimal.NewFromInt(800),
		Method:          "cash",
	})
	require.NoError(t, err)

	_, err = paymentService.Decide(ctx, companyID, finalResp.ID, approverID, DecideRequest{Decision: "approved"})
	require.NoError(t, err)

	// The advance-backed posting settles the supplier from Supplier Advance,
	// so the final payment leaves Cash at 800.
	assert.True(t, books.balanceOf(t, ledger.AccountCash).Equal(decimal.NewFromInt(800)))
	assert.True(t, books.balanceOf(t, ledger.AccountSupplierAdvance).Equal(decimal.NewFromInt(-600)))
	assert.True(t, books.balanceOf(t, ledger.AccountSupplier).Equal(decimal.NewFromInt(-200)))

	// Opening entry plus advance, goods receipt and final payment
	require.Len(t, books.entries, 4)
	for _, entry := range books.entries {
		assert.True(t, entry.TotalDebit().Equal(entry.TotalCredit()),
			"entry %s is unbalanced", entry.Description)
	}
	assert.False(t, books.balanceOf(t, ledger.AccountCash).IsNegative())
}
