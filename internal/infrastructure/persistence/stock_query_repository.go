package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormStockQueryRepository implements StockQueryRepository by aggregating the
// append-only record in SQL instead of loading it into memory.
//
// The derivation matches inventory.OnHand: lot quantities plus signed
// movements plus adjustments. Transfers net to zero at company scope and are
// signed per endpoint at warehouse scope.
type GormStockQueryRepository struct {
	db *gorm.DB
}

// NewGormStockQueryRepository creates a new GormStockQueryRepository
func NewGormStockQueryRepository(db *gorm.DB) *GormStockQueryRepository {
	return &GormStockQueryRepository{db: db}
}

type onHandRow struct {
	ProductID uuid.UUID
	Total     decimal.Decimal
}

// OnHandForProduct computes on-hand for a product across every warehouse
func (r *GormStockQueryRepository) OnHandForProduct(ctx context.Context, companyID, productID uuid.UUID) (decimal.Decimal, error) {
	var row onHandRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT SUM(quantity) FROM stock_lots
				WHERE company_id = ? AND product_id = ?), 0)
			+ COALESCE((SELECT SUM(CASE type WHEN 'IN' THEN quantity WHEN 'OUT' THEN -quantity ELSE 0 END)
				FROM stock_movements
				WHERE company_id = ? AND product_id = ?), 0)
			+ COALESCE((SELECT SUM(quantity) FROM inventory_adjustments
				WHERE company_id = ? AND product_id = ?), 0)
			AS total`,
		companyID, productID,
		companyID, productID,
		companyID, productID,
	).Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// OnHandForProductInWarehouse computes on-hand for a product in one warehouse
func (r *GormStockQueryRepository) OnHandForProductInWarehouse(ctx context.Context, companyID, productID, warehouseID uuid.UUID) (decimal.Decimal, error) {
	var row onHandRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT SUM(quantity) FROM stock_lots
				WHERE company_id = ? AND product_id = ? AND warehouse_id = ?), 0)
			+ COALESCE((SELECT SUM(
				CASE
					WHEN type = 'IN' AND warehouse_id = ? THEN quantity
					WHEN type = 'OUT' AND warehouse_id = ? THEN -quantity
					WHEN type = 'TR' AND to_warehouse_id = ? THEN quantity
					WHEN type = 'TR' AND from_warehouse_id = ? THEN -quantity
					ELSE 0
				END)
				FROM stock_movements
				WHERE company_id = ? AND product_id = ?), 0)
			+ COALESCE((SELECT SUM(quantity) FROM inventory_adjustments
				WHERE company_id = ? AND product_id = ? AND warehouse_id = ?), 0)
			AS total`,
		companyID, productID, warehouseID,
		warehouseID, warehouseID, warehouseID, warehouseID,
		companyID, productID,
		companyID, productID, warehouseID,
	).Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// OnHandForCompany computes on-hand per product across the whole company
func (r *GormStockQueryRepository) OnHandForCompany(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	result := make(map[uuid.UUID]decimal.Decimal)

	var lotRows []onHandRow
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockLot{}).
		Select("product_id, SUM(quantity) AS total").
		Where("company_id = ?", companyID).
		Group("product_id").
		Scan(&lotRows).Error; err != nil {
		return nil, err
	}
	for _, row := range lotRows {
		result[row.ProductID] = result[row.ProductID].Add(row.Total)
	}

	var movementRows []onHandRow
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Select("product_id, SUM(CASE type WHEN 'IN' THEN quantity WHEN 'OUT' THEN -quantity ELSE 0 END) AS total").
		Where("company_id = ?", companyID).
		Group("product_id").
		Scan(&movementRows).Error; err != nil {
		return nil, err
	}
	for _, row := range movementRows {
		result[row.ProductID] = result[row.ProductID].Add(row.Total)
	}

	var adjustmentRows []onHandRow
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryAdjustment{}).
		Select("product_id, SUM(quantity) AS total").
		Where("company_id = ?", companyID).
		Group("product_id").
		Scan(&adjustmentRows).Error; err != nil {
		return nil, err
	}
	for _, row := range adjustmentRows {
		result[row.ProductID] = result[row.ProductID].Add(row.Total)
	}

	return result, nil
}

// Ensure GormStockQueryRepository implements StockQueryRepository
var _ inventory.StockQueryRepository = (*GormStockQueryRepository)(nil)
