package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Save creates or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// FindByCodeForCompany finds an account by code within a company
func (r *GormAccountRepository) FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*ledger.Account, error) {
	var account ledger.Account
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND code = ?", companyID, strings.TrimSpace(code)).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindAllForCompany finds all accounts of a company
func (r *GormAccountRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]ledger.Account, error) {
	var accounts []ledger.Account
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("code ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Balance computes the account balance as the sum of debits minus the sum of
// credits over every posted line.
func (r *GormAccountRepository) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Balance decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&ledger.Line{}).
		Select("COALESCE(SUM(debit - credit), 0) AS balance").
		Where("account_id = ?", accountID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Balance, nil
}

// Ensure GormAccountRepository implements AccountRepository
var _ ledger.AccountRepository = (*GormAccountRepository)(nil)

// GormEntryRepository implements EntryRepository using GORM.
// Entries and lines are append-only; there is no update or delete path.
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// Append writes an entry together with its lines
func (r *GormEntryRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByIDForCompany finds an entry by ID within a company
func (r *GormEntryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*ledger.Entry, error) {
	var entry ledger.Entry
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindAllForCompany finds entries for a company with pagination
func (r *GormEntryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[ledger.Entry], error) {
	base := r.db.WithContext(ctx).
		Model(&ledger.Entry{}).
		Where("company_id = ?", companyID)

	if filter.Search != "" {
		base = base.Where("description ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[ledger.Entry]{}, err
	}

	var entries []ledger.Entry
	query := applyPaginationAndOrder(base.Preload("Lines"), filter, LedgerEntrySortFields)
	if err := query.Find(&entries).Error; err != nil {
		return shared.Paginated[ledger.Entry]{}, err
	}

	return shared.NewPaginated(entries, total, filter.Page, filter.PageSize), nil
}

// Ensure GormEntryRepository implements EntryRepository
var _ ledger.EntryRepository = (*GormEntryRepository)(nil)
