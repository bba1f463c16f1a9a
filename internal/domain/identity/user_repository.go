package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*User, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// UserRoleRepository defines persistence operations for role assignments
type UserRoleRepository interface {
	Save(ctx context.Context, assignment *UserRole) error
	Delete(ctx context.Context, userID, roleID, companyID uuid.UUID) error
	FindByUser(ctx context.Context, userID, companyID uuid.UUID) ([]UserRole, error)
	Exists(ctx context.Context, userID, roleID, companyID uuid.UUID) (bool, error)
}
