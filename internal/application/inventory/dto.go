package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/inventory"
)

// CreateWarehouseRequest is the request to create a warehouse
type CreateWarehouseRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Code     string `json:"code" binding:"required,max=20"`
	Location string `json:"location" binding:"max=200"`
}

// UpdateWarehouseRequest is the request to update a warehouse
type UpdateWarehouseRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// WarehouseResponse is the response for warehouse data
type WarehouseResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Location  string    `json:"location,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IntakeLotRequest books a stock lot into a warehouse
type IntakeLotRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	BatchNumber string          `json:"batch_number" binding:"required,max=100"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Expiry      *time.Time      `json:"expiry"`
}

// StockLotResponse is the response for stock lot data
type StockLotResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	BatchNumber string          `json:"batch_number,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Expiry      *time.Time      `json:"expiry,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RecordMovementRequest records an IN, OUT or TR movement
type RecordMovementRequest struct {
	ProductID       uuid.UUID              `json:"product_id" binding:"required"`
	Type            inventory.MovementType `json:"type" binding:"required"`
	WarehouseID     *uuid.UUID             `json:"warehouse_id"`
	FromWarehouseID *uuid.UUID             `json:"from_warehouse_id"`
	ToWarehouseID   *uuid.UUID             `json:"to_warehouse_id"`
	Quantity        decimal.Decimal        `json:"quantity" binding:"required"`
	Reference       string                 `json:"reference" binding:"max=100"`
}

// StockMovementResponse is the response for a recorded movement
type StockMovementResponse struct {
	ID              uuid.UUID              `json:"id"`
	ProductID       uuid.UUID              `json:"product_id"`
	Type            inventory.MovementType `json:"type"`
	WarehouseID     *uuid.UUID             `json:"warehouse_id,omitempty"`
	FromWarehouseID *uuid.UUID             `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *uuid.UUID             `json:"to_warehouse_id,omitempty"`
	Quantity        decimal.Decimal        `json:"quantity"`
	Reference       string                 `json:"reference,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// PostAdjustmentRequest posts a signed inventory adjustment
type PostAdjustmentRequest struct {
	ProductID   uuid.UUID                  `json:"product_id" binding:"required"`
	WarehouseID uuid.UUID                  `json:"warehouse_id" binding:"required"`
	Quantity    decimal.Decimal            `json:"quantity" binding:"required"`
	Reason      inventory.AdjustmentReason `json:"reason" binding:"required"`
	Note        string                     `json:"note" binding:"max=500"`
}

// AdjustmentResponse is the response for a posted adjustment
type AdjustmentResponse struct {
	ID          uuid.UUID                  `json:"id"`
	ProductID   uuid.UUID                  `json:"product_id"`
	WarehouseID uuid.UUID                  `json:"warehouse_id"`
	Quantity    decimal.Decimal            `json:"quantity"`
	Reason      inventory.AdjustmentReason `json:"reason"`
	Note        string                     `json:"note,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// OnHandResponse is an on-hand figure for a product
type OnHandResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	WarehouseID *uuid.UUID      `json:"warehouse_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// LowStockItem is a product whose on-hand quantity is at or below the threshold
type LowStockItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ToWarehouseResponse converts a warehouse to a response
func ToWarehouseResponse(w *inventory.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		Location:  w.Location,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// ToStockLotResponse converts a stock lot to a response
func ToStockLotResponse(l *inventory.StockLot) StockLotResponse {
	return StockLotResponse{
		ID:          l.ID,
		ProductID:   l.ProductID,
		WarehouseID: l.WarehouseID,
		BatchNumber: l.BatchNumber,
		Quantity:    l.Quantity,
		Expiry:      l.ExpiryDate,
		CreatedAt:   l.CreatedAt,
	}
}

// ToStockMovementResponse converts a movement to a response
func ToStockMovementResponse(m *inventory.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Type:            m.Type,
		WarehouseID:     m.WarehouseID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		Quantity:        m.Quantity,
		Reference:       m.Reference,
		CreatedAt:       m.CreatedAt,
	}
}

// ToAdjustmentResponse converts an adjustment to a response
func ToAdjustmentResponse(a *inventory.InventoryAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          a.ID,
		ProductID:   a.ProductID,
		WarehouseID: a.WarehouseID,
		Quantity:    a.Quantity,
		Reason:      a.Reason,
		Note:        a.Note,
		CreatedAt:   a.CreatedAt,
	}
}
