package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockLotRepository implements StockLotRepository using GORM
type GormStockLotRepository struct {
	db *gorm.DB
}

// NewGormStockLotRepository creates a new GormStockLotRepository
func NewGormStockLotRepository(db *gorm.DB) *GormStockLotRepository {
	return &GormStockLotRepository{db: db}
}

// Save creates or updates a stock lot
func (r *GormStockLotRepository) Save(ctx context.Context, lot *inventory.StockLot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

// FindByIDForCompany finds a lot by ID within a company
func (r *GormStockLotRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.StockLot, error) {
	var lot inventory.StockLot
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByProduct finds all lots of a product within a company
func (r *GormStockLotRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockLot, error) {
	var lots []inventory.StockLot
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND product_id = ?", companyID, productID).
		Order("created_at ASC").
		Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// FindExpiring finds lots whose expiry date falls within the given horizon
func (r *GormStockLotRepository) FindExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]inventory.StockLot, error) {
	horizon := time.Now().AddDate(0, 0, withinDays)

	var lots []inventory.StockLot
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", companyID, horizon).
		Order("expiry_date ASC").
		Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// Ensure GormStockLotRepository implements StockLotRepository
var _ inventory.StockLotRepository = (*GormStockLotRepository)(nil)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The table is append-only; there is no update or delete path.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Append writes a movement record
func (r *GormStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct finds all movements of a product within a company
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND product_id = ?", companyID, productID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindAllForCompany finds movements for a company with pagination
func (r *GormStockMovementRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockMovement], error) {
	base := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Where("company_id = ?", companyID)

	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			base = base.Where("product_id = ?", value)
		case "warehouse_id":
			base = base.Where("warehouse_id = ?", value)
		case "type":
			base = base.Where("type = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[inventory.StockMovement]{}, err
	}

	var movements []inventory.StockMovement
	query := applyPaginationAndOrder(base, filter, StockMovementSortFields)
	if err := query.Find(&movements).Error; err != nil {
		return shared.Paginated[inventory.StockMovement]{}, err
	}

	return shared.NewPaginated(movements, total, filter.Page, filter.PageSize), nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)

// GormAdjustmentRepository implements AdjustmentRepository using GORM.
// The table is append-only; there is no update or delete path.
type GormAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormAdjustmentRepository creates a new GormAdjustmentRepository
func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

// Append writes an adjustment record
func (r *GormAdjustmentRepository) Append(ctx context.Context, adjustment *inventory.InventoryAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

// FindByProduct finds all adjustments of a product within a company
func (r *GormAdjustmentRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.InventoryAdjustment, error) {
	var adjustments []inventory.InventoryAdjustment
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND product_id = ?", companyID, productID).
		Order("created_at ASC").
		Find(&adjustments).Error; err != nil {
		return nil, err
	}
	return adjustments, nil
}

// Ensure GormAdjustmentRepository implements AdjustmentRepository
var _ inventory.AdjustmentRepository = (*GormAdjustmentRepository)(nil)
