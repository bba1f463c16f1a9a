package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// AccountRepository defines persistence operations for ledger accounts
type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*Account, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]Account, error)
	// Balance computes Σ debit − Σ credit over every line posted against the
	// account.
	Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}

// EntryRepository is append-only: entries and their lines are written once
// and never modified.
type EntryRepository interface {
	Append(ctx context.Context, entry *Entry) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Entry, error)
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[Entry], error)
}
