package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// WarehouseService handles warehouse operations
type WarehouseService struct {
	warehouseRepo inventory.WarehouseRepository
	logger        *zap.Logger
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo inventory.WarehouseRepository, logger *zap.Logger) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		logger:        logger,
	}
}

// Create creates a warehouse with a company-unique code
func (s *WarehouseService) Create(ctx context.Context, companyID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	taken, err := s.warehouseRepo.ExistsByCodeForCompany(ctx, companyID, req.Code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Warehouse with this code already exists")
	}

	warehouse, err := inventory.NewWarehouse(companyID, req.Name, req.Code, req.Location)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	s.logger.Info("Warehouse created",
		zap.String("warehouse_id", warehouse.ID.String()),
		zap.String("code", warehouse.Code))

	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// List retrieves the company's warehouses
func (s *WarehouseService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]WarehouseResponse, error) {
	warehouses, err := s.warehouseRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		responses = append(responses, ToWarehouseResponse(&warehouses[i]))
	}
	return responses, nil
}

// Update renames a warehouse
func (s *WarehouseService) Update(ctx context.Context, companyID, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := warehouse.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	resp := ToWarehouseResponse(warehouse)
	return &resp, nil
}

// Deactivate takes a warehouse out of service
func (s *WarehouseService) Deactivate(ctx context.Context, companyID, id uuid.UUID) error {
	warehouse, err := s.warehouseRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return err
	}
	warehouse.Deactivate()
	return s.warehouseRepo.Save(ctx, warehouse)
}
