package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.CompanyRepository[Product]
	FindBySKU(ctx context.Context, companyID uuid.UUID, sku string) (*Product, error)
	FindByCategory(ctx context.Context, companyID, categoryID uuid.UUID) ([]Product, error)
	// NextSKUSequence returns the next sequence number for the
	// (company, category) SKU scope. A nil category is the GEN scope.
	NextSKUSequence(ctx context.Context, companyID uuid.UUID, categoryID *uuid.UUID) (int, error)
	SaveAll(ctx context.Context, products []*Product) error
}

// ProductSerialRepository defines persistence operations for serials
type ProductSerialRepository interface {
	Save(ctx context.Context, serial *ProductSerial) error
	Exists(ctx context.Context, productID uuid.UUID, serial string) (bool, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]ProductSerial, error)
}
