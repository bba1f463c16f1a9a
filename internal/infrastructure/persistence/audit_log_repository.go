package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
// The table is append-only; there is no update or delete path.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append writes an audit record
func (r *GormAuditLogRepository) Append(ctx context.Context, log *identity.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindAllForCompany finds audit records for a company
func (r *GormAuditLogRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[identity.AuditLog], error) {
	base := r.db.WithContext(ctx).Model(&identity.AuditLog{}).Where("company_id = ?", companyID)
	return r.paginate(base, filter)
}

// FindByActor finds audit records written by a specific actor
func (r *GormAuditLogRepository) FindByActor(ctx context.Context, actorID uuid.UUID, filter shared.Filter) (shared.Paginated[identity.AuditLog], error) {
	base := r.db.WithContext(ctx).Model(&identity.AuditLog{}).Where("actor_id = ?", actorID)
	return r.paginate(base, filter)
}

func (r *GormAuditLogRepository) paginate(base *gorm.DB, filter shared.Filter) (shared.Paginated[identity.AuditLog], error) {
	base = r.applyFilterWithoutPagination(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[identity.AuditLog]{}, err
	}

	var logs []identity.AuditLog
	query := applyPaginationAndOrder(base, filter, AuditLogSortFields)
	if err := query.Find(&logs).Error; err != nil {
		return shared.Paginated[identity.AuditLog]{}, err
	}

	return shared.NewPaginated(logs, total, filter.Page, filter.PageSize), nil
}

func (r *GormAuditLogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("action ILIKE ? OR path ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "action":
			query = query.Where("action = ?", value)
		case "target_type":
			query = query.Where("target_type = ?", value)
		case "method":
			query = query.Where("method = ?", value)
		}
	}
	return query
}

// Ensure GormAuditLogRepository implements AuditLogRepository
var _ identity.AuditLogRepository = (*GormAuditLogRepository)(nil)
