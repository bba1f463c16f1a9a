package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService handles the purchase order lifecycle after creation
type OrderService struct {
	orderRepo procurement.PurchaseOrderRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo procurement.PurchaseOrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetByID retrieves a purchase order within the company
func (s *OrderService) GetByID(ctx context.Context, companyID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(po), nil
}

// GetByNumber retrieves a purchase order by its order number
func (s *OrderService) GetByNumber(ctx context.Context, companyID uuid.UUID, orderNumber string) (*PurchaseOrderResponse, error) {
	po, err := s.orderRepo.FindByOrderNumberForCompany(ctx, companyID, orderNumber)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponse(po), nil
}

// List returns purchase orders for the company, paginated
func (s *OrderService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[PurchaseOrderResponse], error) {
	orders, err := s.orderRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		items[i] = *ToPurchaseOrderResponse(&orders[i])
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Submit sends a draft order to the supplier
func (s *OrderService) Submit(ctx context.Context, companyID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	if err := po.Submit(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order submitted",
		zap.String("order_number", po.OrderNumber))

	return ToPurchaseOrderResponse(po), nil
}

// Acknowledge records the supplier's acknowledgement of a submitted order
func (s *OrderService) Acknowledge(ctx context.Context, companyID, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.orderRepo.FindByIDForCompany(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}

	po.Acknowledge()

	if err := s.orderRepo.Save(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order acknowledged",
		zap.String("order_number", po.OrderNumber))

	return ToPurchaseOrderResponse(po), nil
}
