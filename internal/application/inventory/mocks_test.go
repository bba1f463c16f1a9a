package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/shared"
)

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *inventory.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, companyID, code)
	return args.Bool(0), args.Error(1)
}

// MockStockLotRepository is a mock implementation of StockLotRepository
type MockStockLotRepository struct {
	mock.Mock
}

func (m *MockStockLotRepository) Save(ctx context.Context, lot *inventory.StockLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockStockLotRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.StockLot, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLot), args.Error(1)
}

func (m *MockStockLotRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockLot, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).([]inventory.StockLot), args.Error(1)
}

func (m *MockStockLotRepository) FindExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]inventory.StockLot, error) {
	args := m.Called(ctx, companyID, withinDays)
	return args.Get(0).([]inventory.StockLot), args.Error(1)
}

// MockStockMovementRepository is a mock implementation of StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockMovement], error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(shared.Paginated[inventory.StockMovement]), args.Error(1)
}

// MockAdjustmentRepository is a mock implementation of AdjustmentRepository
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) Append(ctx context.Context, adjustment *inventory.InventoryAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.InventoryAdjustment, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).([]inventory.InventoryAdjustment), args.Error(1)
}

// MockStockQueryRepository is a mock implementation of StockQueryRepository
type MockStockQueryRepository struct {
	mock.Mock
}

func (m *MockStockQueryRepository) OnHandForProduct(ctx context.Context, companyID, productID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStockQueryRepository) OnHandForProductInWarehouse(ctx context.Context, companyID, productID, warehouseID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, productID, warehouseID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStockQueryRepository) OnHandForCompany(ctx context.Context, companyID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}
