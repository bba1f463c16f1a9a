package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StockService handles lot intake, movements, adjustments and on-hand queries
type StockService struct {
	warehouseRepo inventory.WarehouseRepository
	queryRepo     inventory.StockQueryRepository
	txScope       TransactionScope
	logger        *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(
	warehouseRepo inventory.WarehouseRepository,
	queryRepo inventory.StockQueryRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *StockService {
	return &StockService{
		warehouseRepo: warehouseRepo,
		queryRepo:     queryRepo,
		txScope:       txScope,
		logger:        logger,
	}
}

// IntakeLot books an opening stock lot. The lot quantity feeds the on-hand
// derivation directly, so no movement row is written alongside it.
func (s *StockService) IntakeLot(ctx context.Context, companyID uuid.UUID, req IntakeLotRequest) (*StockLotResponse, error) {
	if err := s.requireWarehouse(ctx, companyID, req.WarehouseID); err != nil {
		return nil, err
	}

	lot, err := inventory.NewStockLot(companyID, req.ProductID, req.WarehouseID, req.BatchNumber, req.Quantity, req.Expiry)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.LotRepo().Save(ctx, lot)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stock lot booked",
		zap.String("lot_id", lot.ID.String()),
		zap.String("batch", lot.BatchNumber))

	resp := ToStockLotResponse(lot)
	return &resp, nil
}

// RecordMovement records an IN, OUT or TR movement after validating the
// warehouse endpoints.
func (s *StockService) RecordMovement(ctx context.Context, companyID uuid.UUID, req RecordMovementRequest) (*StockMovementResponse, error) {
	var movement *inventory.StockMovement
	var err error

	switch req.Type {
	case inventory.MovementIn, inventory.MovementOut:
		if req.WarehouseID == nil {
			return nil, shared.NewDomainError("INVALID_MOVEMENT", "Movement requires a warehouse")
		}
		if err := s.requireWarehouse(ctx, companyID, *req.WarehouseID); err != nil {
			return nil, err
		}
		if req.Type == inventory.MovementIn {
			movement, err = inventory.NewInboundMovement(companyID, req.ProductID, *req.WarehouseID, req.Quantity, req.Reference)
		} else {
			movement, err = inventory.NewOutboundMovement(companyID, req.ProductID, *req.WarehouseID, req.Quantity, req.Reference)
		}
	case inventory.MovementTransfer:
		if req.FromWarehouseID == nil || req.ToWarehouseID == nil {
			return nil, shared.NewDomainError("INVALID_TRANSFER", "Transfer requires both warehouses")
		}
		if err := s.requireWarehouse(ctx, companyID, *req.FromWarehouseID); err != nil {
			return nil, err
		}
		if err := s.requireWarehouse(ctx, companyID, *req.ToWarehouseID); err != nil {
			return nil, err
		}
		movement, err = inventory.NewTransferMovement(companyID, req.ProductID, *req.FromWarehouseID, *req.ToWarehouseID, req.Quantity, req.Reference)
	default:
		return nil, shared.NewDomainError("INVALID_MOVEMENT", "Unknown movement type")
	}
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.MovementRepo().Append(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	resp := ToStockMovementResponse(movement)
	return &resp, nil
}

// PostAdjustment posts a signed adjustment to on-hand stock
func (s *StockService) PostAdjustment(ctx context.Context, companyID uuid.UUID, createdBy uuid.UUID, req PostAdjustmentRequest) (*AdjustmentResponse, error) {
	if err := s.requireWarehouse(ctx, companyID, req.WarehouseID); err != nil {
		return nil, err
	}

	adjustment, err := inventory.NewInventoryAdjustment(companyID, req.ProductID, req.WarehouseID, req.Quantity, req.Reason, req.Note)
	if err != nil {
		return nil, err
	}
	adjustment.CreatedBy = &createdBy

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.AdjustmentRepo().Append(ctx, adjustment)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory adjusted",
		zap.String("product_id", req.ProductID.String()),
		zap.String("reason", string(req.Reason)),
		zap.String("quantity", req.Quantity.String()))

	resp := ToAdjustmentResponse(adjustment)
	return &resp, nil
}

// OnHand returns the company-wide on-hand quantity for a product
func (s *StockService) OnHand(ctx context.Context, companyID, productID uuid.UUID) (*OnHandResponse, error) {
	qty, err := s.queryRepo.OnHandForProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	return &OnHandResponse{ProductID: productID, Quantity: qty}, nil
}

// OnHandInWarehouse returns the per-warehouse on-hand quantity for a product
func (s *StockService) OnHandInWarehouse(ctx context.Context, companyID, productID, warehouseID uuid.UUID) (*OnHandResponse, error) {
	if err := s.requireWarehouse(ctx, companyID, warehouseID); err != nil {
		return nil, err
	}

	qty, err := s.queryRepo.OnHandForProductInWarehouse(ctx, companyID, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &OnHandResponse{ProductID: productID, WarehouseID: &warehouseID, Quantity: qty}, nil
}

// LowStock lists products whose company-wide on-hand is at or below the threshold
func (s *StockService) LowStock(ctx context.Context, companyID uuid.UUID, threshold decimal.Decimal) ([]LowStockItem, error) {
	onHand, err := s.queryRepo.OnHandForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]LowStockItem, 0)
	for productID, qty := range onHand {
		if qty.LessThanOrEqual(threshold) {
			items = append(items, LowStockItem{ProductID: productID, Quantity: qty})
		}
	}
	return items, nil
}

func (s *StockService) requireWarehouse(ctx context.Context, companyID, warehouseID uuid.UUID) error {
	_, err := s.warehouseRepo.FindByIDForCompany(ctx, companyID, warehouseID)
	return err
}
