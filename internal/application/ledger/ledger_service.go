package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/shared"
)

// LedgerService handles account management and entry posting
type LedgerService struct {
	accountRepo ledger.AccountRepository
	entryRepo   ledger.EntryRepository
	txScope     TransactionScope
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(
	accountRepo ledger.AccountRepository,
	entryRepo ledger.EntryRepository,
	txScope TransactionScope,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		txScope:     txScope,
	}
}

// CreateAccount creates a ledger account with a unique code per company
func (s *LedgerService) CreateAccount(ctx context.Context, companyID uuid.UUID, req CreateAccountRequest) (*AccountResponse, error) {
	existing, err := s.accountRepo.FindByCodeForCompany(ctx, companyID, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Account with this code already exists")
	}

	account, err := ledger.NewAccount(companyID, req.Code, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	return ToAccountResponse(account, decimal.Zero), nil
}

// EnsureDefaultAccounts creates the well-known accounts a fresh company needs.
// Already-existing accounts are left untouched.
func (s *LedgerService) EnsureDefaultAccounts(ctx context.Context, companyID uuid.UUID) error {
	defaults := []string{
		ledger.AccountCash,
		ledger.AccountBank,
		ledger.AccountSupplier,
		ledger.AccountSupplierAdvance,
		ledger.AccountInventory,
	}

	for _, code := range defaults {
		_, err := s.accountRepo.FindByCodeForCompany(ctx, companyID, code)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		account, err := ledger.NewAccount(companyID, code, "")
		if err != nil {
			return err
		}
		if err := s.accountRepo.Save(ctx, account); err != nil {
			return err
		}
	}

	return nil
}

// Post appends a ledger entry and verifies solvency inside one transaction.
// Account codes are resolved per company; after the entry is written, every
// liquid account touched by it is re-balanced and a negative balance rolls the
// whole posting back with ErrInsufficientFunds.
func (s *LedgerService) Post(ctx context.Context, companyID uuid.UUID, req PostEntryRequest) (*EntryResponse, error) {
	specs := make([]ledger.LineSpec, 0, len(req.Lines))
	for _, line := range req.Lines {
		specs = append(specs, ledger.LineSpec{
			AccountCode: line.AccountCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
		})
	}
	return s.PostSpecs(ctx, companyID, req.Description, specs)
}

// PostSpecs is the programmatic posting entry point used by other services
// (goods receipt, payments) that already hold resolved line specs.
func (s *LedgerService) PostSpecs(ctx context.Context, companyID uuid.UUID, description string, specs []ledger.LineSpec) (*EntryResponse, error) {
	var response *EntryResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := PostEntry(ctx, repos.AccountRepo(), repos.EntryRepo(), companyID, description, specs)
		if err != nil {
			return err
		}
		response = ToEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetAccount returns an account with its computed balance
func (s *LedgerService) GetAccount(ctx context.Context, companyID uuid.UUID, code string) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByCodeForCompany(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	balance, err := s.accountRepo.Balance(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return ToAccountResponse(account, balance), nil
}

// ListAccounts returns all accounts for a company with their balances
func (s *LedgerService) ListAccounts(ctx context.Context, companyID uuid.UUID) ([]AccountResponse, error) {
	accounts, err := s.accountRepo.FindAllForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		balance, err := s.accountRepo.Balance(ctx, accounts[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *ToAccountResponse(&accounts[i], balance))
	}
	return responses, nil
}

// TrialBalance lists every account with its net balance placed in the debit
// or credit column, plus the column totals
func (s *LedgerService) TrialBalance(ctx context.Context, companyID uuid.UUID) (*TrialBalanceResponse, error) {
	accounts, err := s.accountRepo.FindAllForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := &TrialBalanceResponse{Rows: make([]TrialBalanceRow, 0, len(accounts))}
	for i := range accounts {
		net, err := s.accountRepo.Balance(ctx, accounts[i].ID)
		if err != nil {
			return nil, err
		}

		row := TrialBalanceRow{AccountID: accounts[i].ID, Code: accounts[i].Code}
		if net.IsNegative() {
			row.Credit = net.Neg()
		} else {
			row.Debit = net
		}
		result.Rows = append(result.Rows, row)
		result.TotalDebit = result.TotalDebit.Add(row.Debit)
		result.TotalCredit = result.TotalCredit.Add(row.Credit)
	}
	return result, nil
}

// GetEntry returns a posted entry
func (s *LedgerService) GetEntry(ctx context.Context, companyID, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToEntryResponse(entry), nil
}

// ListEntries returns posted entries for a company
func (s *LedgerService) ListEntries(ctx context.Context, companyID uuid.UUID, filter EntryListFilter) (shared.Paginated[EntryResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	page, err := s.entryRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return shared.Paginated[EntryResponse]{}, err
	}

	items := make([]EntryResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToEntryResponse(&page.Items[i]))
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}
