package procurement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tradecore/backend/internal/domain/procurement"
	"go.uber.org/zap"
)

type invoiceFixture struct {
	service      *InvoiceService
	invoiceRepo  *MockInvoiceRepository
	orderRepo    *MockPurchaseOrderRepository
	receiptRepo  *MockGoodsReceiptRepository
	supplierRepo *MockSupplierRepository
}

func newInvoiceFixture() *invoiceFixture {
	invoiceRepo := new(MockInvoiceRepository)
	orderRepo := new(MockPurchaseOrderRepository)
	receiptRepo := new(MockGoodsReceiptRepository)
	supplierRepo := new(MockSupplierRepository)
	return &invoiceFixture{
		service:      NewInvoiceService(invoiceRepo, orderRepo, receiptRepo, supplierRepo, zap.NewNop()),
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		receiptRepo:  receiptRepo,
		supplierRepo: supplierRepo,
	}
}

func appliedReceipt(t *testing.T, companyID uuid.UUID, po *procurement.PurchaseOrder, quantity int64) procurement.GoodsReceipt {
	t.Helper()
	line := po.Lines[0]
	receipt, err := procurement.NewGoodsReceipt(
		companyID, po.ID, line.ID, line.ProductID, uuid.New(), decimal.NewFromInt(quantity), "", nil)
	require.NoError(t, err)
	require.NoError(t, receipt.MarkApplied())
	return *receipt
}

func TestInvoiceServiceCreate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("records a pending invoice", func(t *testing.T) {
		f := newInvoiceFixture()
		supplier := mustSupplier(t, companyID)
		po, err := procurement.NewPurchaseOrder(companyID, supplier.ID, "PO-000001")
		require.NoError(t, err)

		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.orderRepo.On("FindByIDForCompany", ctx, companyID, po.ID).Return(po, nil)
		f.invoiceRepo.On("Save", ctx, mock.AnythingOfType("*procurement.Invoice")).Return(nil)

		resp, err := f.service.Create(ctx, companyID, CreateInvoiceRequest{
			SupplierID:      supplier.ID,
			PurchaseOrderID: po.ID,
			InvoiceNumber:   "INV-42",
			Amount:          decimal.NewFromInt(1000),
		})

		require.NoError(t, err)
		assert.Equal(t, string(procurement.InvoicePending), resp.Status)
	})

	t.Run("rejects a supplier that does not match the order", func(t *testing.T) {
		f := newInvoiceFixture()
		supplier := mustSupplier(t, companyID)
		po, err := procurement.NewPurchaseOrder(companyID, uuid.New(), "PO-000002")
		require.NoError(t, err)

		f.supplierRepo.On("FindByIDForCompany", ctx, companyID, supplier.ID).Return(supplier, nil)
		f.orderRepo.On("FindByIDForCompany", ctx, companyID, po.ID).Return(po, nil)

		_, err = f.service.Create(ctx, companyID, CreateInvoiceRequest{
			SupplierID:      supplier.ID,
			PurchaseOrderID: po.ID,
			InvoiceNumber:   "INV-43",
			Amount:          decimal.NewFromInt(1000),
		})

		assert.ErrorContains(t, err, "does not match")
		f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestInvoiceServiceApprove(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	setup := func(t *testing.T, invoiceAmount int64) (*invoiceFixture, *procurement.Invoice, *procurement.PurchaseOrder) {
		f := newInvoiceFixture()
		po := mustOrder(t, companyID) // one line: 2 × 500

		invoice, err := procurement.NewInvoice(companyID, po.SupplierID, po.ID, "INV-100", decimal.NewFromInt(invoiceAmount))
		require.NoError(t, err)

		f.invoiceRepo.On("FindByIDForCompany", ctx, companyID, invoice.ID).Return(invoice, nil)
		f.orderRepo.On("FindByIDForCompany", ctx, companyID, po.ID).Return(po, nil)
		return f, invoice, po
	}

	t.Run("approves when order, receipts and invoice agree", func(t *testing.T) {
		f, invoice, po := setup(t, 1000)
		approverID := uuid.New()

		f.receiptRepo.On("FindByPurchaseOrder", ctx, companyID, po.ID).
			Return([]procurement.GoodsReceipt{appliedReceipt(t, companyID, po, 2)}, nil)
		f.invoiceRepo.On("Save", ctx, invoice).Return(nil)

		resp, err := f.service.Approve(ctx, companyID, invoice.ID, approverID)

		require.NoError(t, err)
		assert.Equal(t, string(procurement.InvoiceApproved), resp.Status)
		require.NotNil(t, resp.DecidedBy)
		assert.Equal(t, approverID, *resp.DecidedBy)
	})

	t.Run("refuses when the received total falls short", func(t *testing.T) {
		f, invoice, po := setup(t, 1000)

		f.receiptRepo.On("FindByPurchaseOrder", ctx, companyID, po.ID).
			Return([]procurement.GoodsReceipt{appliedReceipt(t, companyID, po, 1)}, nil)

		_, err := f.service.Approve(ctx, companyID, invoice.ID, uuid.New())

		assert.ErrorContains(t, err, "do not match")
		f.invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("refuses when the invoice amount differs", func(t *testing.T) {
		f, invoice, po := setup(t, 900)

		f.receiptRepo.On("FindByPurchaseOrder", ctx, companyID, po.ID).
			Return([]procurement.GoodsReceipt{appliedReceipt(t, companyID, po, 2)}, nil)

		_, err := f.service.Approve(ctx, companyID, invoice.ID, uuid.New())

		assert.ErrorContains(t, err, "do not match")
	})
}

func TestInvoiceServiceReject(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	f := newInvoiceFixture()
	invoice, err := procurement.NewInvoice(companyID, uuid.New(), uuid.New(), "INV-200", decimal.NewFromInt(500))
	require.NoError(t, err)
	approverID := uuid.New()

	f.invoiceRepo.On("FindByIDForCompany", ctx, companyID, invoice.ID).Return(invoice, nil)
	f.invoiceRepo.On("Save", ctx, invoice).Return(nil)

	resp, err := f.service.Reject(ctx, companyID, invoice.ID, approverID)

	require.NoError(t, err)
	assert.Equal(t, string(procurement.InvoiceRejected), resp.Status)
}
