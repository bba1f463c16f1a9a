package procurement

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// PurchaseOrderStatus represents the state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderSubmitted PurchaseOrderStatus = "submitted"
)

// IsValid checks if the purchase order status is valid
func (s PurchaseOrderStatus) IsValid() bool {
	return s == PurchaseOrderDraft || s == PurchaseOrderSubmitted
}

// PurchaseOrder is a confirmed order to a supplier. Order numbers are
// sequential per company.
type PurchaseOrder struct {
	shared.CompanyAggregateRoot
	SupplierID     uuid.UUID
	OrderNumber    string
	Status         PurchaseOrderStatus
	AcknowledgedAt *time.Time
	Lines          []PurchaseOrderLine `gorm:"foreignKey:PurchaseOrderID"`
}

// TableName returns the database table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLine is an ordered product with receipt tracking
type PurchaseOrderLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ReceivedQty     decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	CreatedAt       time.Time
}

// TableName returns the database table name
func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}

// LineTotal returns quantity × unit price
func (l *PurchaseOrderLine) LineTotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Outstanding returns the quantity still to be received
func (l *PurchaseOrderLine) Outstanding() decimal.Decimal {
	return l.Quantity.Sub(l.ReceivedQty)
}

// BuildOrderNumber composes the sequential order number
func BuildOrderNumber(sequence int) string {
	return fmt.Sprintf("PO-%06d", sequence)
}

// NewPurchaseOrder creates a draft purchase order
func NewPurchaseOrder(companyID, supplierID uuid.UUID, orderNumber string) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}

	po := &PurchaseOrder{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		SupplierID:           supplierID,
		OrderNumber:          orderNumber,
		Status:               PurchaseOrderDraft,
	}

	po.AddDomainEvent(NewPurchaseOrderCreatedEvent(po))

	return po, nil
}

// AddLine appends an order line. Only drafts can be edited.
func (po *PurchaseOrder) AddLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if po.Status != PurchaseOrderDraft {
		return shared.ErrInvalidState
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Order quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Order unit price cannot be negative")
	}

	po.Lines = append(po.Lines, PurchaseOrderLine{
		ID:              uuid.New(),
		PurchaseOrderID: po.ID,
		ProductID:       productID,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		ReceivedQty:     decimal.Zero,
		CreatedAt:       time.Now(),
	})
	po.UpdatedAt = time.Now()
	po.IncrementVersion()

	return nil
}

// Submit finalizes the draft and sends it to the supplier
func (po *PurchaseOrder) Submit() error {
	if po.Status != PurchaseOrderDraft {
		return shared.ErrInvalidState
	}
	if len(po.Lines) == 0 {
		return shared.NewDomainError("EMPTY_ORDER", "Cannot submit a purchase order without lines")
	}

	po.Status = PurchaseOrderSubmitted
	po.UpdatedAt = time.Now()
	po.IncrementVersion()
	po.AddDomainEvent(NewPurchaseOrderSubmittedEvent(po))

	return nil
}

// Acknowledge records the supplier's confirmation. The first call stamps the
// time; repeated calls are accepted and change nothing.
func (po *PurchaseOrder) Acknowledge() {
	if po.AcknowledgedAt != nil {
		return
	}
	now := time.Now()
	po.AcknowledgedAt = &now
	po.UpdatedAt = now
	po.IncrementVersion()
}

// Total sums all line totals
func (po *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range po.Lines {
		total = total.Add(po.Lines[i].LineTotal())
	}
	return total
}

// FindLine returns the line with the given ID
func (po *PurchaseOrder) FindLine(lineID uuid.UUID) (*PurchaseOrderLine, error) {
	for i := range po.Lines {
		if po.Lines[i].ID == lineID {
			return &po.Lines[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// RecordReceipt increases the received quantity on a line. Over-receiving is
// rejected.
func (po *PurchaseOrder) RecordReceipt(lineID uuid.UUID, quantity decimal.Decimal) error {
	line, err := po.FindLine(lineID)
	if err != nil {
		return err
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}
	if quantity.GreaterThan(line.Outstanding()) {
		return shared.NewDomainError("OVER_RECEIPT", "Received quantity exceeds outstanding order quantity")
	}

	line.ReceivedQty = line.ReceivedQty.Add(quantity)
	po.UpdatedAt = time.Now()
	po.IncrementVersion()

	return nil
}
