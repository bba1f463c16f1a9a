package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// QuotationService records supplier pricing and turns selected quotes into
// purchase orders
type QuotationService struct {
	quotationRepo   procurement.QuotationRepository
	supplierRepo    procurement.SupplierRepository
	requisitionRepo procurement.RequisitionRepository
	orderRepo       procurement.PurchaseOrderRepository
	txScope         TransactionScope
	logger          *zap.Logger
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(
	quotationRepo procurement.QuotationRepository,
	supplierRepo procurement.SupplierRepository,
	requisitionRepo procurement.RequisitionRepository,
	orderRepo procurement.PurchaseOrderRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *QuotationService {
	return &QuotationService{
		quotationRepo:   quotationRepo,
		supplierRepo:    supplierRepo,
		requisitionRepo: requisitionRepo,
		orderRepo:       orderRepo,
		txScope:         txScope,
		logger:          logger,
	}
}

// Create records a quotation request for a supplier. When linked to a
// requisition, the requisition must be approved.
func (s *QuotationService) Create(ctx context.Context, companyID uuid.UUID, req CreateQuotationRequest) (*QuotationResponse, error) {
	if _, err := s.supplierRepo.FindByIDForCompany(ctx, companyID, req.SupplierID); err != nil {
		return nil, err
	}

	if req.RequisitionID != nil {
		requisition, err := s.requisitionRepo.FindByIDForCompany(ctx, companyID, *req.RequisitionID)
		if err != nil {
			return nil, err
		}
		if requisition.Status != procurement.RequisitionApproved {
			return nil, shared.NewDomainError("REQUISITION_NOT_APPROVED", "Quotations require an approved requisition")
		}
	}

	quotation, err := procurement.NewQuotationRequest(companyID, req.SupplierID, req.RequisitionID, req.Reference)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		if err := quotation.AddLine(line.ProductID, line.Quantity, line.UnitPrice, line.EAN, line.Serials); err != nil {
			return nil, err
		}
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	s.logger.Info("Quotation recorded",
		zap.String("quotation_id", quotation.ID.String()),
		zap.String("reference", quotation.Reference))

	return ToQuotationResponse(quotation), nil
}

// GetByID retrieves a quotation within the company
func (s *QuotationService) GetByID(ctx context.Context, companyID, quotationID uuid.UUID) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByIDForCompany(ctx, companyID, quotationID)
	if err != nil {
		return nil, err
	}
	return ToQuotationResponse(quotation), nil
}

// List returns quotations for the company, paginated
func (s *QuotationService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[QuotationResponse], error) {
	quotations, err := s.quotationRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.quotationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]QuotationResponse, len(quotations))
	for i := range quotations {
		items[i] = *ToQuotationResponse(&quotations[i])
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// AddLine appends a quoted line to an existing quotation
func (s *QuotationService) AddLine(ctx context.Context, companyID, quotationID uuid.UUID, req QuotationLineRequest) (*QuotationResponse, error) {
	quotation, err := s.quotationRepo.FindByIDForCompany(ctx, companyID, quotationID)
	if err != nil {
		return nil, err
	}

	if err := quotation.AddLine(req.ProductID, req.Quantity, req.UnitPrice, req.EAN, req.Serials); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Save(ctx, quotation); err != nil {
		return nil, err
	}

	return ToQuotationResponse(quotation), nil
}

// SelectLine marks a quoted line selected and creates the draft purchase
// order carrying it. Selection and order creation commit as one unit.
func (s *QuotationService) SelectLine(ctx context.Context, companyID, quotationID, lineID uuid.UUID) (*PurchaseOrderResponse, error) {
	quotation, err := s.quotationRepo.FindByIDForCompany(ctx, companyID, quotationID)
	if err != nil {
		return nil, err
	}

	line, err := quotation.SelectLine(lineID)
	if err != nil {
		return nil, err
	}

	var response *PurchaseOrderResponse
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		sequence, err := repos.OrderRepo().NextOrderSequence(ctx, companyID)
		if err != nil {
			return err
		}

		po, err := procurement.NewPurchaseOrder(companyID, quotation.SupplierID, procurement.BuildOrderNumber(sequence))
		if err != nil {
			return err
		}
		if err := po.AddLine(line.ProductID, line.Quantity, line.UnitPrice); err != nil {
			return err
		}

		if err := repos.QuotationRepo().Save(ctx, quotation); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, po); err != nil {
			return err
		}

		response = ToPurchaseOrderResponse(po)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Quotation line selected",
		zap.String("quotation_id", quotationID.String()),
		zap.String("order_number", response.OrderNumber))

	return response, nil
}
