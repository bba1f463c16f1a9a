package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// AdjustmentReason classifies inventory adjustments
type AdjustmentReason string

const (
	AdjustmentDamage AdjustmentReason = "damage"
	AdjustmentAudit  AdjustmentReason = "audit"
	AdjustmentOther  AdjustmentReason = "other"
)

// IsValid checks if the adjustment reason is valid
func (r AdjustmentReason) IsValid() bool {
	switch r {
	case AdjustmentDamage, AdjustmentAudit, AdjustmentOther:
		return true
	}
	return false
}

// InventoryAdjustment is an append-only signed correction to on-hand stock
type InventoryAdjustment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Quantity    decimal.Decimal  `gorm:"type:decimal(20,4);not null"`
	Reason      AdjustmentReason `gorm:"size:20;not null"`
	Note        string           `gorm:"size:500"`
	CreatedBy   *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt   time.Time        `gorm:"index"`
}

// TableName returns the database table name
func (InventoryAdjustment) TableName() string {
	return "inventory_adjustments"
}

// NewInventoryAdjustment creates a signed adjustment. Zero adjustments are
// rejected; negative quantities reduce on-hand.
func NewInventoryAdjustment(companyID, productID, warehouseID uuid.UUID, quantity decimal.Decimal, reason AdjustmentReason, note string) (*InventoryAdjustment, error) {
	if quantity.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment quantity cannot be zero")
	}
	if !reason.IsValid() {
		return nil, shared.NewDomainError("INVALID_REASON", "Unknown adjustment reason")
	}

	return &InventoryAdjustment{
		ID:          uuid.New(),
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		Reason:      reason,
		Note:        note,
		CreatedAt:   time.Now(),
	}, nil
}
