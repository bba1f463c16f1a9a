package ledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Well-known account codes. Cash and Bank are the liquid accounts guarded by
// the solvency check.
const (
	AccountCash            = "Cash"
	AccountBank            = "Bank"
	AccountSupplier        = "Supplier"
	AccountSupplierAdvance = "Supplier Advance"
	AccountInventory       = "Inventory"
)

// LiquidAccounts are the account codes that must never go negative
var LiquidAccounts = []string{AccountCash, AccountBank}

// Account is a ledger account. The code is unique per company.
type Account struct {
	shared.CompanyAggregateRoot
	Code        string
	Description string
}

// TableName returns the database table name
func (Account) TableName() string {
	return "ledger_accounts"
}

// NewAccount creates a ledger account
func NewAccount(companyID uuid.UUID, code, description string) (*Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Account code cannot be empty")
	}
	if len(code) > 100 {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Account code cannot exceed 100 characters")
	}

	return &Account{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Code:                 code,
		Description:          strings.TrimSpace(description),
	}, nil
}

// IsLiquid reports whether the account participates in the solvency check
func (a *Account) IsLiquid() bool {
	for _, code := range LiquidAccounts {
		if a.Code == code {
			return true
		}
	}
	return false
}
