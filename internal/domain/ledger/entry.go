package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Entry is an append-only ledger entry. It groups the lines written in one
// posting; lines are immutable once the entry is persisted.
//
// An entry does not enforce that debits equal credits: account selection and
// balancing are the posting caller's responsibility.
type Entry struct {
	shared.CompanyAggregateRoot
	Date        time.Time
	Description string
	Lines       []Line `gorm:"foreignKey:EntryID"`
}

// TableName returns the database table name
func (Entry) TableName() string {
	return "ledger_entries"
}

// Line is a single debit or credit against an account
type Line struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Credit    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt time.Time
}

// TableName returns the database table name
func (Line) TableName() string {
	return "ledger_lines"
}

// LineSpec names an account by code with the amounts to post against it
type LineSpec struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// NewEntry creates an entry dated now
func NewEntry(companyID uuid.UUID, description string) (*Entry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Entry description cannot be empty")
	}

	return &Entry{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Date:                 time.Now(),
		Description:          description,
	}, nil
}

// AddLine appends a line for the resolved account
func (e *Entry) AddLine(accountID uuid.UUID, debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return shared.NewDomainError("INVALID_LINE_AMOUNT", "Ledger line amounts cannot be negative")
	}
	if debit.IsZero() && credit.IsZero() {
		return shared.NewDomainError("INVALID_LINE_AMOUNT", "Ledger line must debit or credit a non-zero amount")
	}

	e.Lines = append(e.Lines, Line{
		ID:        uuid.New(),
		EntryID:   e.ID,
		AccountID: accountID,
		Debit:     debit,
		Credit:    credit,
		CreatedAt: time.Now(),
	})
	return nil
}

// TotalDebit sums the debit side of the entry
func (e *Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for i := range e.Lines {
		total = total.Add(e.Lines[i].Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry
func (e *Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for i := range e.Lines {
		total = total.Add(e.Lines[i].Credit)
	}
	return total
}
