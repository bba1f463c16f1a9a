package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	shared.CompanyRepository[Category]
	FindTreeForCompany(ctx context.Context, companyID uuid.UUID) ([]Category, error)
	ExistsByNameForCompany(ctx context.Context, companyID uuid.UUID, name string) (bool, error)
	FindRequiredIdentifiers(ctx context.Context, categoryID uuid.UUID) ([]IdentifierType, error)
	AttachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error
	DetachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error
	SaveAll(ctx context.Context, categories []*Category) error
}

// IdentifierTypeRepository defines persistence operations for identifier types
type IdentifierTypeRepository interface {
	FindByCode(ctx context.Context, code string) (*IdentifierType, error)
	FindAll(ctx context.Context) ([]IdentifierType, error)
	Save(ctx context.Context, it *IdentifierType) error
}
