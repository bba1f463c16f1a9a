package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type stockFixture struct {
	service       *StockService
	warehouseRepo *MockWarehouseRepository
	lotRepo       *MockStockLotRepository
	movementRepo  *MockStockMovementRepository
	adjRepo       *MockAdjustmentRepository
	queryRepo     *MockStockQueryRepository
}

func newStockFixture() *stockFixture {
	f := &stockFixture{
		warehouseRepo: new(MockWarehouseRepository),
		lotRepo:       new(MockStockLotRepository),
		movementRepo:  new(MockStockMovementRepository),
		adjRepo:       new(MockAdjustmentRepository),
		queryRepo:     new(MockStockQueryRepository),
	}
	scope := NewNoOpTransactionScope(f.lotRepo, f.movementRepo, f.adjRepo)
	f.service = NewStockService(f.warehouseRepo, f.queryRepo, scope, zap.NewNop())
	return f
}

func testWarehouse(t *testing.T, companyID uuid.UUID, code string) *inventory.Warehouse {
	t.Helper()
	w, err := inventory.NewWarehouse(companyID, "Main Warehouse "+code, code, "Dubai")
	require.NoError(t, err)
	return w
}

func TestStockService_IntakeLot(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	productID := uuid.New()

	t.Run("books lot without a movement row", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)
		f.lotRepo.On("Save", ctx, mock.AnythingOfType("*inventory.StockLot")).Return(nil)

		resp, err := f.service.IntakeLot(ctx, companyID, IntakeLotRequest{
			ProductID:   productID,
			WarehouseID: warehouse.ID,
			BatchNumber: "BATCH-01",
			Quantity:    decimal.NewFromInt(5),
		})

		require.NoError(t, err)
		assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(5)))
		f.movementRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("unknown warehouse is rejected", func(t *testing.T) {
		f := newStockFixture()
		warehouseID := uuid.New()

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouseID).Return(nil, shared.ErrNotFound)

		_, err := f.service.IntakeLot(ctx, companyID, IntakeLotRequest{
			ProductID:   productID,
			WarehouseID: warehouseID,
			BatchNumber: "BATCH-01",
			Quantity:    decimal.NewFromInt(5),
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.lotRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestStockService_RecordMovement(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	productID := uuid.New()

	t.Run("records inbound movement", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)
		f.movementRepo.On("Append", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		resp, err := f.service.RecordMovement(ctx, companyID, RecordMovementRequest{
			ProductID:   productID,
			Type:        inventory.MovementIn,
			WarehouseID: &warehouse.ID,
			Quantity:    decimal.NewFromInt(3),
			Reference:   "manual",
		})

		require.NoError(t, err)
		assert.Equal(t, inventory.MovementIn, resp.Type)
		assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(3)))
	})

	t.Run("transfer validates both warehouses", func(t *testing.T) {
		f := newStockFixture()
		from := testWarehouse(t, companyID, "WH1")
		to := testWarehouse(t, companyID, "WH2")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, from.ID).Return(from, nil)
		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, to.ID).Return(to, nil)
		f.movementRepo.On("Append", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		resp, err := f.service.RecordMovement(ctx, companyID, RecordMovementRequest{
			ProductID:       productID,
			Type:            inventory.MovementTransfer,
			FromWarehouseID: &from.ID,
			ToWarehouseID:   &to.ID,
			Quantity:        decimal.NewFromInt(2),
		})

		require.NoError(t, err)
		assert.Equal(t, inventory.MovementTransfer, resp.Type)
		assert.Equal(t, from.ID, *resp.FromWarehouseID)
		assert.Equal(t, to.ID, *resp.ToWarehouseID)
	})

	t.Run("transfer without destination is rejected", func(t *testing.T) {
		f := newStockFixture()
		from := testWarehouse(t, companyID, "WH1")

		_, err := f.service.RecordMovement(ctx, companyID, RecordMovementRequest{
			ProductID:       productID,
			Type:            inventory.MovementTransfer,
			FromWarehouseID: &from.ID,
			Quantity:        decimal.NewFromInt(2),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "both warehouses")
	})

	t.Run("transfer onto itself is rejected", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)

		_, err := f.service.RecordMovement(ctx, companyID, RecordMovementRequest{
			ProductID:       productID,
			Type:            inventory.MovementTransfer,
			FromWarehouseID: &warehouse.ID,
			ToWarehouseID:   &warehouse.ID,
			Quantity:        decimal.NewFromInt(2),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must differ")
	})

	t.Run("outbound without warehouse is rejected", func(t *testing.T) {
		f := newStockFixture()

		_, err := f.service.RecordMovement(ctx, companyID, RecordMovementRequest{
			ProductID: productID,
			Type:      inventory.MovementOut,
			Quantity:  decimal.NewFromInt(2),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a warehouse")
	})
}

func TestStockService_PostAdjustment(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	productID := uuid.New()
	actorID := uuid.New()

	t.Run("posts negative adjustment", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)

		var recorded *inventory.InventoryAdjustment
		f.adjRepo.On("Append", ctx, mock.AnythingOfType("*inventory.InventoryAdjustment")).
			Run(func(args mock.Arguments) {
				recorded = args.Get(1).(*inventory.InventoryAdjustment)
			}).Return(nil)

		resp, err := f.service.PostAdjustment(ctx, companyID, actorID, PostAdjustmentRequest{
			ProductID:   productID,
			WarehouseID: warehouse.ID,
			Quantity:    decimal.NewFromInt(-2),
			Reason:      inventory.AdjustmentDamage,
			Note:        "dropped pallet",
		})

		require.NoError(t, err)
		assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(-2)))
		require.NotNil(t, recorded)
		assert.Equal(t, actorID, *recorded.CreatedBy)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)

		_, err := f.service.PostAdjustment(ctx, companyID, actorID, PostAdjustmentRequest{
			ProductID:   productID,
			WarehouseID: warehouse.ID,
			Quantity:    decimal.Zero,
			Reason:      inventory.AdjustmentAudit,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be zero")
	})
}

func TestStockService_OnHandQueries(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	productID := uuid.New()

	t.Run("company-wide on-hand", func(t *testing.T) {
		f := newStockFixture()

		f.queryRepo.On("OnHandForProduct", ctx, companyID, productID).
			Return(decimal.NewFromInt(4), nil)

		resp, err := f.service.OnHand(ctx, companyID, productID)

		require.NoError(t, err)
		assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(4)))
		assert.Nil(t, resp.WarehouseID)
	})

	t.Run("warehouse-scoped on-hand", func(t *testing.T) {
		f := newStockFixture()
		warehouse := testWarehouse(t, companyID, "WH1")

		f.warehouseRepo.On("FindByIDForCompany", ctx, companyID, warehouse.ID).Return(warehouse, nil)
		f.queryRepo.On("OnHandForProductInWarehouse", ctx, companyID, productID, warehouse.ID).
			Return(decimal.NewFromInt(2), nil)

		resp, err := f.service.OnHandInWarehouse(ctx, companyID, productID, warehouse.ID)

		require.NoError(t, err)
		assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, warehouse.ID, *resp.WarehouseID)
	})

	t.Run("low stock filters by threshold", func(t *testing.T) {
		f := newStockFixture()
		lowID := uuid.New()
		okID := uuid.New()

		f.queryRepo.On("OnHandForCompany", ctx, companyID).
			Return(map[uuid.UUID]decimal.Decimal{
				lowID: decimal.NewFromInt(1),
				okID:  decimal.NewFromInt(50),
			}, nil)

		items, err := f.service.LowStock(ctx, companyID, decimal.NewFromInt(5))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, lowID, items[0].ProductID)
	})
}
