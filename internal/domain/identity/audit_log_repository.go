package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// AuditLogRepository is append-only: records can be written and queried but
// never updated or removed.
type AuditLogRepository interface {
	Append(ctx context.Context, log *AuditLog) error
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[AuditLog], error)
	FindByActor(ctx context.Context, actorID uuid.UUID, filter shared.Filter) (shared.Paginated[AuditLog], error)
}
