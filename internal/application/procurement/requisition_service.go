package procurement

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RequisitionService handles the purchase requisition lifecycle
type RequisitionService struct {
	requisitionRepo procurement.RequisitionRepository
	logger          *zap.Logger
}

// NewRequisitionService creates a new RequisitionService
func NewRequisitionService(requisitionRepo procurement.RequisitionRepository, logger *zap.Logger) *RequisitionService {
	return &RequisitionService{
		requisitionRepo: requisitionRepo,
		logger:          logger,
	}
}

// Create opens a draft requisition with any initial items
func (s *RequisitionService) Create(ctx context.Context, companyID, requestedBy uuid.UUID, req CreateRequisitionRequest) (*RequisitionResponse, error) {
	requisition, err := procurement.NewRequisition(companyID, requestedBy, req.Title)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if err := requisition.AddItem(item.ProductID, item.Quantity, item.Note); err != nil {
			return nil, err
		}
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}

	s.logger.Info("Requisition created",
		zap.String("requisition_id", requisition.ID.String()),
		zap.String("title", requisition.Title))

	return ToRequisitionResponse(requisition), nil
}

// GetByID retrieves a requisition within the company
func (s *RequisitionService) GetByID(ctx context.Context, companyID, requisitionID uuid.UUID) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByIDForCompany(ctx, companyID, requisitionID)
	if err != nil {
		return nil, err
	}
	return ToRequisitionResponse(requisition), nil
}

// List returns requisitions for the company, paginated
func (s *RequisitionService) List(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[RequisitionResponse], error) {
	requisitions, err := s.requisitionRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.requisitionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]RequisitionResponse, len(requisitions))
	for i := range requisitions {
		items[i] = *ToRequisitionResponse(&requisitions[i])
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// AddItem appends a line to a draft requisition
func (s *RequisitionService) AddItem(ctx context.Context, companyID, requisitionID uuid.UUID, req RequisitionItemRequest) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByIDForCompany(ctx, companyID, requisitionID)
	if err != nil {
		return nil, err
	}

	if err := requisition.AddItem(req.ProductID, req.Quantity, req.Note); err != nil {
		return nil, err
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}

	return ToRequisitionResponse(requisition), nil
}

// Submit moves a draft requisition into pending approval
func (s *RequisitionService) Submit(ctx context.Context, companyID, requisitionID uuid.UUID) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByIDForCompany(ctx, companyID, requisitionID)
	if err != nil {
		return nil, err
	}

	if err := requisition.Submit(); err != nil {
		return nil, err
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}

	s.logger.Info("Requisition submitted",
		zap.String("requisition_id", requisition.ID.String()))

	return ToRequisitionResponse(requisition), nil
}

// Decide records an approval or rejection by the given approver
func (s *RequisitionService) Decide(ctx context.Context, companyID, requisitionID, approverID uuid.UUID, req DecideRequest) (*RequisitionResponse, error) {
	requisition, err := s.requisitionRepo.FindByIDForCompany(ctx, companyID, requisitionID)
	if err != nil {
		return nil, err
	}

	decision := procurement.ApprovalDecision(req.Decision)
	if err := requisition.Decide(approverID, decision, req.Note); err != nil {
		return nil, err
	}

	if err := s.requisitionRepo.Save(ctx, requisition); err != nil {
		return nil, err
	}

	s.logger.Info("Requisition decided",
		zap.String("requisition_id", requisition.ID.String()),
		zap.String("decision", req.Decision))

	return ToRequisitionResponse(requisition), nil
}
