package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/ledger"
)

// CreateAccountRequest represents a request to create a ledger account
type CreateAccountRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// PostEntryRequest represents a request to post a ledger entry
type PostEntryRequest struct {
	Description string           `json:"description" binding:"required,min=1,max=500"`
	Lines       []PostLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PostLineRequest is one line of a posting request
type PostLineRequest struct {
	AccountCode string          `json:"account_code" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountResponse represents a ledger account in API responses
type AccountResponse struct {
	ID          uuid.UUID       `json:"id"`
	CompanyID   uuid.UUID       `json:"company_id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	IsLiquid    bool            `json:"is_liquid"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryResponse represents a posted entry in API responses
type EntryResponse struct {
	ID          uuid.UUID      `json:"id"`
	CompanyID   uuid.UUID      `json:"company_id"`
	Date        time.Time      `json:"date"`
	Description string         `json:"description"`
	Lines       []LineResponse `json:"lines"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// LineResponse is one line of a posted entry
type LineResponse struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceRow is one account on the trial balance, with its net balance
// carried in the debit or credit column
type TrialBalanceRow struct {
	AccountID uuid.UUID       `json:"account_id"`
	Code      string          `json:"code"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the company trial balance
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
}

// EntryListFilter represents filter options for the entry list
type EntryListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// ToAccountResponse converts a domain account and its computed balance
func ToAccountResponse(a *ledger.Account, balance decimal.Decimal) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		CompanyID:   a.CompanyID,
		Code:        a.Code,
		Description: a.Description,
		Balance:     balance,
		IsLiquid:    a.IsLiquid(),
		CreatedAt:   a.CreatedAt,
	}
}

// ToEntryResponse converts a domain entry to EntryResponse
func ToEntryResponse(e *ledger.Entry) *EntryResponse {
	lines := make([]LineResponse, 0, len(e.Lines))
	for i := range e.Lines {
		lines = append(lines, LineResponse{
			ID:        e.Lines[i].ID,
			AccountID: e.Lines[i].AccountID,
			Debit:     e.Lines[i].Debit,
			Credit:    e.Lines[i].Credit,
		})
	}
	return &EntryResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		Date:        e.Date,
		Description: e.Description,
		Lines:       lines,
		TotalDebit:  e.TotalDebit(),
		TotalCredit: e.TotalCredit(),
	}
}
