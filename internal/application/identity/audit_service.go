package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecordActionInput describes one auditable action
type RecordActionInput struct {
	ActorID    uuid.UUID
	CompanyID  *uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	Method     string
	Path       string
	Details    any
}

// AuditService writes and queries the append-only audit trail
type AuditService struct {
	auditRepo identity.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo identity.AuditLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends an audit entry. Callers must strip secrets from Details
// before recording.
func (s *AuditService) Record(ctx context.Context, input RecordActionInput) error {
	log, err := identity.NewAuditLog(input.ActorID, input.CompanyID, input.Action)
	if err != nil {
		return err
	}
	log.WithTarget(input.TargetType, input.TargetID).
		WithRequest(input.Method, input.Path).
		WithDetails(input.Details)

	if err := s.auditRepo.Append(ctx, log); err != nil {
		// Audit failure must not break the audited operation.
		s.logger.Error("Failed to append audit log",
			zap.String("action", input.Action),
			zap.Error(err))
		return err
	}
	return nil
}

// List returns audit entries for a company
func (s *AuditService) List(ctx context.Context, companyID uuid.UUID, filter AuditLogFilter) (shared.Paginated[AuditLogResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	var page shared.Paginated[identity.AuditLog]
	var err error
	if filter.ActorID != nil {
		page, err = s.auditRepo.FindByActor(ctx, *filter.ActorID, domainFilter)
	} else {
		page, err = s.auditRepo.FindAllForCompany(ctx, companyID, domainFilter)
	}
	if err != nil {
		return shared.Paginated[AuditLogResponse]{}, err
	}

	items := make([]AuditLogResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToAuditLogResponse(&page.Items[i]))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}
