package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// QuotationRequest gathers supplier pricing for an approved requisition.
// Selecting a line is the one-shot act that turns a quote into a purchase
// order.
type QuotationRequest struct {
	shared.CompanyAggregateRoot
	SupplierID    uuid.UUID
	RequisitionID *uuid.UUID
	Reference     string
	Lines         []QuotationLine `gorm:"foreignKey:QuotationID"`
}

// TableName returns the database table name
func (QuotationRequest) TableName() string {
	return "quotation_requests"
}

// QuotationLine is one quoted product. EAN and serial candidates are carried
// so goods receipt can verify them later.
type QuotationLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuotationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	EAN         string          `gorm:"size:14"`
	SerialList  string          `gorm:"type:text"`
	Selected    bool            `gorm:"not null;default:false"`
	SelectedAt  *time.Time
	CreatedAt   time.Time
}

// TableName returns the database table name
func (QuotationLine) TableName() string {
	return "quotation_lines"
}

// Serials splits the stored serial list
func (l *QuotationLine) Serials() []string {
	if strings.TrimSpace(l.SerialList) == "" {
		return nil
	}
	parts := strings.Split(l.SerialList, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NewQuotationRequest creates a quotation request for a supplier
func NewQuotationRequest(companyID, supplierID uuid.UUID, requisitionID *uuid.UUID, reference string) (*QuotationRequest, error) {
	return &QuotationRequest{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		SupplierID:           supplierID,
		RequisitionID:        requisitionID,
		Reference:            strings.TrimSpace(reference),
	}, nil
}

// AddLine appends a quoted product
func (q *QuotationRequest) AddLine(productID uuid.UUID, quantity, unitPrice decimal.Decimal, ean string, serials []string) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quotation quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Quotation unit price cannot be negative")
	}

	q.Lines = append(q.Lines, QuotationLine{
		ID:          uuid.New(),
		QuotationID: q.ID,
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		EAN:         strings.TrimSpace(ean),
		SerialList:  strings.Join(serials, ","),
		CreatedAt:   time.Now(),
	})
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// SelectLine marks a line as selected. A line can only ever be selected
// once; the caller creates the purchase order from the returned line.
func (q *QuotationRequest) SelectLine(lineID uuid.UUID) (*QuotationLine, error) {
	for i := range q.Lines {
		if q.Lines[i].ID != lineID {
			continue
		}
		if q.Lines[i].Selected {
			return nil, shared.NewDomainError("LINE_ALREADY_SELECTED", "Quotation line has already been selected")
		}

		now := time.Now()
		q.Lines[i].Selected = true
		q.Lines[i].SelectedAt = &now
		q.UpdatedAt = now
		q.IncrementVersion()

		return &q.Lines[i], nil
	}
	return nil, shared.ErrNotFound
}
