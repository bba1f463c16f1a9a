package procurement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// GoodsReceipt records goods arriving against a purchase order line.
//
// Construction only validates shape. The financial and stock effects (serial
// registration, lot intake, ledger posting, received-quantity bump) happen in
// Apply on the receiving service, inside one transaction, so a receipt can be
// built and inspected without touching any books.
type GoodsReceipt struct {
	shared.CompanyAggregateRoot
	PurchaseOrderID uuid.UUID
	OrderLineID     uuid.UUID
	ProductID       uuid.UUID
	WarehouseID     uuid.UUID
	Quantity        decimal.Decimal
	EAN             string
	SerialList      string `gorm:"type:text"`
	AppliedAt       *time.Time
}

// TableName returns the database table name
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// NewGoodsReceipt creates an unapplied receipt
func NewGoodsReceipt(companyID, poID, lineID, productID, warehouseID uuid.UUID, quantity decimal.Decimal, ean string, serials []string) (*GoodsReceipt, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Receipt quantity must be positive")
	}

	return &GoodsReceipt{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		PurchaseOrderID:      poID,
		OrderLineID:          lineID,
		ProductID:            productID,
		WarehouseID:          warehouseID,
		Quantity:             quantity,
		EAN:                  strings.TrimSpace(ean),
		SerialList:           strings.Join(serials, ","),
	}, nil
}

// Serials splits the stored serial list
func (g *GoodsReceipt) Serials() []string {
	if strings.TrimSpace(g.SerialList) == "" {
		return nil
	}
	parts := strings.Split(g.SerialList, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsApplied reports whether the receipt's effects have been booked
func (g *GoodsReceipt) IsApplied() bool {
	return g.AppliedAt != nil
}

// MarkApplied stamps the receipt after its effects are booked. Applying twice
// is rejected.
func (g *GoodsReceipt) MarkApplied() error {
	if g.AppliedAt != nil {
		return shared.ErrInvalidState
	}
	now := time.Now()
	g.AppliedAt = &now
	g.UpdatedAt = now
	g.IncrementVersion()
	return nil
}

// SerialExistsFunc reports whether a serial is already registered for the
// product.
type SerialExistsFunc func(ctx context.Context, serial string) (bool, error)

// ComplianceProfile is what the receipt is validated against: the identifier
// codes the product's category requires and the product's own attributes.
type ComplianceProfile struct {
	RequiredIdentifiers []string
	ProductBarcode      string
	TrackSerial         bool
}

// Requires reports whether the profile demands the given identifier code
func (p ComplianceProfile) Requires(code string) bool {
	for _, c := range p.RequiredIdentifiers {
		if c == code {
			return true
		}
	}
	return false
}

// ValidateCompliance checks the receipt against the category's identifier
// requirements:
//
//   - EAN13: the receipt EAN must equal the product barcode
//   - SER:   one serial per received unit, each unused for this product
func (g *GoodsReceipt) ValidateCompliance(ctx context.Context, profile ComplianceProfile, serialExists SerialExistsFunc) error {
	if profile.Requires(IdentifierCodeEAN13) {
		if g.EAN == "" || g.EAN != profile.ProductBarcode {
			return shared.NewDomainError("EAN_MISMATCH", "EAN mismatch")
		}
	}

	if profile.Requires(IdentifierCodeSerial) {
		serials := g.Serials()
		if int64(len(serials)) != g.Quantity.IntPart() || !g.Quantity.Equal(decimal.NewFromInt(int64(len(serials)))) {
			return shared.NewDomainError("SERIAL_COUNT_MISMATCH", "Serial count mismatch")
		}

		seen := make(map[string]struct{}, len(serials))
		for _, s := range serials {
			if _, dup := seen[s]; dup {
				return shared.NewDomainError("SERIAL_DUPLICATE", "Serial duplicate")
			}
			seen[s] = struct{}{}

			exists, err := serialExists(ctx, s)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("SERIAL_DUPLICATE", "Serial duplicate")
			}
		}
	}

	return nil
}

// Identifier codes understood by goods receipt compliance. They mirror the
// catalog identifier type codes.
const (
	IdentifierCodeEAN13  = "EAN13"
	IdentifierCodeSerial = "SER"
)
