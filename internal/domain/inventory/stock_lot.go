package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// StockLot is an intake batch of a product held in a warehouse. Lot
// quantities are part of the on-hand derivation alongside movements and
// adjustments.
type StockLot struct {
	shared.CompanyAggregateRoot
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	BatchNumber string
	ExpiryDate  *time.Time
	Quantity    decimal.Decimal
}

// TableName returns the database table name
func (StockLot) TableName() string {
	return "stock_lots"
}

// NewStockLot creates an intake lot
func NewStockLot(companyID, productID, warehouseID uuid.UUID, batchNumber string, quantity decimal.Decimal, expiry *time.Time) (*StockLot, error) {
	batchNumber = strings.TrimSpace(batchNumber)
	if batchNumber == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_NUMBER", "Batch number cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Lot quantity cannot be negative")
	}

	return &StockLot{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		ProductID:            productID,
		WarehouseID:          warehouseID,
		BatchNumber:          batchNumber,
		ExpiryDate:           expiry,
		Quantity:             quantity,
	}, nil
}

// IsExpired reports whether the lot has passed its expiry date
func (l *StockLot) IsExpired(at time.Time) bool {
	return l.ExpiryDate != nil && at.After(*l.ExpiryDate)
}
