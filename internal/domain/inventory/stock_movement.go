package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// MovementType classifies stock movements
type MovementType string

const (
	MovementIn       MovementType = "IN"
	MovementOut      MovementType = "OUT"
	MovementTransfer MovementType = "TR"
)

// IsValid checks if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer:
		return true
	}
	return false
}

// StockMovement is an append-only record of stock entering, leaving or moving
// between warehouses. Transfers carry both endpoints and net to zero at
// company scope.
type StockMovement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	WarehouseID     *uuid.UUID `gorm:"type:uuid;index"`
	FromWarehouseID *uuid.UUID `gorm:"type:uuid"`
	ToWarehouseID   *uuid.UUID `gorm:"type:uuid"`
	Type            MovementType `gorm:"size:3;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Reference       string `gorm:"size:200"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName returns the database table name
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewInboundMovement records stock arriving at a warehouse
func NewInboundMovement(companyID, productID, warehouseID uuid.UUID, quantity decimal.Decimal, reference string) (*StockMovement, error) {
	if err := validateMovementQuantity(quantity); err != nil {
		return nil, err
	}
	return &StockMovement{
		ID:          uuid.New(),
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: &warehouseID,
		Type:        MovementIn,
		Quantity:    quantity,
		Reference:   reference,
		CreatedAt:   time.Now(),
	}, nil
}

// NewOutboundMovement records stock leaving a warehouse
func NewOutboundMovement(companyID, productID, warehouseID uuid.UUID, quantity decimal.Decimal, reference string) (*StockMovement, error) {
	if err := validateMovementQuantity(quantity); err != nil {
		return nil, err
	}
	return &StockMovement{
		ID:          uuid.New(),
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: &warehouseID,
		Type:        MovementOut,
		Quantity:    quantity,
		Reference:   reference,
		CreatedAt:   time.Now(),
	}, nil
}

// NewTransferMovement records stock moving between two warehouses of the
// same company.
func NewTransferMovement(companyID, productID, fromWarehouseID, toWarehouseID uuid.UUID, quantity decimal.Decimal, reference string) (*StockMovement, error) {
	if err := validateMovementQuantity(quantity); err != nil {
		return nil, err
	}
	if fromWarehouseID == toWarehouseID {
		return nil, shared.NewDomainError("INVALID_TRANSFER", "Transfer source and destination must differ")
	}
	return &StockMovement{
		ID:              uuid.New(),
		CompanyID:       companyID,
		ProductID:       productID,
		FromWarehouseID: &fromWarehouseID,
		ToWarehouseID:   &toWarehouseID,
		Type:            MovementTransfer,
		Quantity:        quantity,
		Reference:       reference,
		CreatedAt:       time.Now(),
	}, nil
}

func validateMovementQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	return nil
}

// CompanyContribution returns the movement's signed effect on company-wide
// on-hand. Transfers contribute nothing at this scope.
func (m *StockMovement) CompanyContribution() decimal.Decimal {
	switch m.Type {
	case MovementIn:
		return m.Quantity
	case MovementOut:
		return m.Quantity.Neg()
	default:
		return decimal.Zero
	}
}

// WarehouseContribution returns the movement's signed effect on the given
// warehouse. Transfers subtract at the source and add at the destination.
func (m *StockMovement) WarehouseContribution(warehouseID uuid.UUID) decimal.Decimal {
	switch m.Type {
	case MovementIn:
		if m.WarehouseID != nil && *m.WarehouseID == warehouseID {
			return m.Quantity
		}
	case MovementOut:
		if m.WarehouseID != nil && *m.WarehouseID == warehouseID {
			return m.Quantity.Neg()
		}
	case MovementTransfer:
		if m.FromWarehouseID != nil && *m.FromWarehouseID == warehouseID {
			return m.Quantity.Neg()
		}
		if m.ToWarehouseID != nil && *m.ToWarehouseID == warehouseID {
			return m.Quantity
		}
	}
	return decimal.Zero
}
