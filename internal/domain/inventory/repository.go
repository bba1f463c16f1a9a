package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// WarehouseRepository defines persistence operations for warehouses
type WarehouseRepository interface {
	shared.CompanyRepository[Warehouse]
	FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*Warehouse, error)
	ExistsByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (bool, error)
}

// StockLotRepository defines persistence operations for stock lots
type StockLotRepository interface {
	Save(ctx context.Context, lot *StockLot) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*StockLot, error)
	FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]StockLot, error)
	FindExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]StockLot, error)
}

// StockMovementRepository is append-only
type StockMovementRepository interface {
	Append(ctx context.Context, movement *StockMovement) error
	FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]StockMovement, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[StockMovement], error)
}

// AdjustmentRepository is append-only
type AdjustmentRepository interface {
	Append(ctx context.Context, adjustment *InventoryAdjustment) error
	FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]InventoryAdjustment, error)
}

// StockQueryRepository aggregates the append-only record into on-hand
// figures directly in SQL.
type StockQueryRepository interface {
	OnHandForProduct(ctx context.Context, companyID, productID uuid.UUID) (decimal.Decimal, error)
	OnHandForProductInWarehouse(ctx context.Context, companyID, productID, warehouseID uuid.UUID) (decimal.Decimal, error)
	OnHandForCompany(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
