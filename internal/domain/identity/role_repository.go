package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// RoleRepository defines persistence operations for roles
type RoleRepository interface {
	shared.Repository[Role]
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Role, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]Role, error)
	FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*Role, error)
	// FindEffectiveCapabilities resolves the union of capabilities granted to
	// the user through effective role assignments within the company.
	FindEffectiveCapabilities(ctx context.Context, userID, companyID uuid.UUID) ([]Capability, error)
}
