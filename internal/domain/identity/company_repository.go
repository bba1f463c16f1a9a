package identity

import (
	"context"

	"github.com/tradecore/backend/internal/domain/shared"
)

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	shared.Repository[Company]
	FindByCode(ctx context.Context, code string) (*Company, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
