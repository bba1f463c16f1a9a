package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// InvoiceService handles supplier invoices and the three-way match
type InvoiceService struct {
	invoiceRepo  procurement.InvoiceRepository
	orderRepo    procurement.PurchaseOrderRepository
	receiptRepo  procurement.GoodsReceiptRepository
	supplierRepo procurement.SupplierRepository
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo procurement.InvoiceRepository,
	orderRepo procurement.PurchaseOrderRepository,
	receiptRepo procurement.GoodsReceiptRepository,
	supplierRepo procurement.SupplierRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		receiptRepo:  receiptRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create records a pending supplier invoice against a purchase order
func (s *InvoiceService) Create(ctx context.Context, companyID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, req.SupplierID); err != nil {
		return nil, err
	}

	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if po.SupplierID != req.SupplierID {
		return nil, shared.NewDomainError("SUPPLIER_MISMATCH", "Invoice supplier does not match the purchase order")
	}

	invoice, err := procurement.NewInvoice(companyID, req.SupplierID, req.PurchaseOrderID, req.InvoiceNumber, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Supplier invoice recorded",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber))

	return ToInvoiceResponse(invoice), nil
}

// GetByID retrieves an invoice within the company
func (s *InvoiceService) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// ListForOrder returns all invoices recorded against a purchase order
func (s *InvoiceService) ListForOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByPurchaseOrder(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Approve runs the three-way match and marks the invoice approved when the
// ordered total, the received total and the invoiced amount agree
func (s *InvoiceService) Approve(ctx context.Context, companyID, invoiceID, approverID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, invoice.PurchaseOrderID)
	if err != nil {
		return nil, err
	}

	receivedTotal, err := s.receivedTotal(ctx, companyID, po)
	if err != nil {
		return nil, err
	}

	if err := invoice.Approve(approverID, po.Total(), receivedTotal); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("Supplier invoice approved",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("approver_id", approverID.String()))

	return ToInvoiceResponse(invoice), nil
}

// Reject marks a pending invoice rejected
func (s *InvoiceService) Reject(ctx context.Context, companyID, invoiceID, approverID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForCompany(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := invoice.Reject(approverID); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// receivedTotal values every applied receipt at its order line's unit price
func (s *InvoiceService) receivedTotal(ctx context.Context, companyID uuid.UUID, po *procurement.PurchaseOrder) (decimal.Decimal, error) {
	receipts, err := s.receiptRepo.FindByPurchaseOrder(ctx, companyID, po.ID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range receipts {
		line, err := po.FindLine(receipts[i].OrderLineID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(receipts[i].Quantity.Mul(line.UnitPrice))
	}
	return total, nil
}
