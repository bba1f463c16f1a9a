package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// SupplierRepository defines persistence operations for suppliers
type SupplierRepository interface {
	shared.CompanyRepository[Supplier]
	FindByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (*Supplier, error)
	ExistsByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (bool, error)
}

// SupplierOTPRepository defines persistence operations for supplier OTPs
type SupplierOTPRepository interface {
	Save(ctx context.Context, otp *SupplierOTP) error
	FindLatestForSupplier(ctx context.Context, companyID, supplierID uuid.UUID) (*SupplierOTP, error)
}

// RequisitionRepository defines persistence operations for requisitions
type RequisitionRepository interface {
	shared.CompanyRepository[Requisition]
}

// QuotationRepository defines persistence operations for quotation requests
type QuotationRepository interface {
	shared.CompanyRepository[QuotationRequest]
}

// PurchaseOrderRepository defines persistence operations for purchase orders
type PurchaseOrderRepository interface {
	shared.CompanyRepository[PurchaseOrder]
	FindByOrderNumberForCompany(ctx context.Context, companyID uuid.UUID, orderNumber string) (*PurchaseOrder, error)
	// NextOrderSequence returns the next per-company order number sequence.
	NextOrderSequence(ctx context.Context, companyID uuid.UUID) (int, error)
}

// GoodsReceiptRepository defines persistence operations for goods receipts
type GoodsReceiptRepository interface {
	Save(ctx context.Context, receipt *GoodsReceipt) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*GoodsReceipt, error)
	FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]GoodsReceipt, error)
}

// InvoiceRepository defines persistence operations for supplier invoices
type InvoiceRepository interface {
	shared.CompanyRepository[Invoice]
	FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]Invoice, error)
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	shared.CompanyRepository[Payment]
	FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]Payment, error)
	// HasApprovedAdvance reports whether an approved advance payment exists
	// for the purchase order.
	HasApprovedAdvance(ctx context.Context, companyID, poID uuid.UUID) (bool, error)
}
