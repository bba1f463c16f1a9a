package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// InvoiceStatus represents the state of a supplier invoice
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoiceApproved InvoiceStatus = "approved"
	InvoiceRejected InvoiceStatus = "rejected"
)

// Invoice is a supplier invoice against a purchase order. Approval requires
// the three-way match to hold.
type Invoice struct {
	shared.CompanyAggregateRoot
	SupplierID      uuid.UUID
	PurchaseOrderID uuid.UUID
	InvoiceNumber   string
	Amount          decimal.Decimal
	Status          InvoiceStatus
	DecidedBy       *uuid.UUID
	DecidedAt       *time.Time
}

// TableName returns the database table name
func (Invoice) TableName() string {
	return "supplier_invoices"
}

// NewInvoice creates a pending invoice
func NewInvoice(companyID, supplierID, poID uuid.UUID, invoiceNumber string, amount decimal.Decimal) (*Invoice, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be positive")
	}

	return &Invoice{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		SupplierID:           supplierID,
		PurchaseOrderID:      poID,
		InvoiceNumber:        invoiceNumber,
		Amount:               amount,
		Status:               InvoicePending,
	}, nil
}

// ThreeWayMatch verifies that the ordered total, the received total and the
// invoiced amount agree. All three must be equal for approval.
func (inv *Invoice) ThreeWayMatch(orderTotal, receivedTotal decimal.Decimal) error {
	if !orderTotal.Equal(receivedTotal) || !receivedTotal.Equal(inv.Amount) {
		return shared.NewDomainError("THREE_WAY_MISMATCH",
			"Order total, received total and invoice amount do not match")
	}
	return nil
}

// Approve marks the invoice approved after a successful match. Decided
// invoices are immutable.
func (inv *Invoice) Approve(approverID uuid.UUID, orderTotal, receivedTotal decimal.Decimal) error {
	if inv.Status != InvoicePending {
		return shared.ErrInvalidState
	}
	if err := inv.ThreeWayMatch(orderTotal, receivedTotal); err != nil {
		return err
	}

	now := time.Now()
	inv.Status = InvoiceApproved
	inv.DecidedBy = &approverID
	inv.DecidedAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}

// Reject marks the invoice rejected
func (inv *Invoice) Reject(approverID uuid.UUID) error {
	if inv.Status != InvoicePending {
		return shared.ErrInvalidState
	}

	now := time.Now()
	inv.Status = InvoiceRejected
	inv.DecidedBy = &approverID
	inv.DecidedAt = &now
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}
