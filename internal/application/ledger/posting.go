package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/shared"
)

// PostEntry resolves account codes, appends the entry and runs the solvency
// check against every liquid account the entry touched. It operates on plain
// repositories so callers that hold transaction-scoped repositories (goods
// receipt, payment approval) can post inside their own transaction.
func PostEntry(
	ctx context.Context,
	accountRepo ledger.AccountRepository,
	entryRepo ledger.EntryRepository,
	companyID uuid.UUID,
	description string,
	specs []ledger.LineSpec,
) (*ledger.Entry, error) {
	if len(specs) == 0 {
		return nil, shared.NewDomainError("EMPTY_ENTRY", "Ledger entry must have at least one line")
	}

	entry, err := ledger.NewEntry(companyID, description)
	if err != nil {
		return nil, err
	}

	touched := make(map[string]*ledger.Account, len(specs))
	for _, spec := range specs {
		account, ok := touched[spec.AccountCode]
		if !ok {
			account, err = accountRepo.FindByCodeForCompany(ctx, companyID, spec.AccountCode)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return nil, shared.NewDomainError("UNKNOWN_ACCOUNT",
						fmt.Sprintf("Account %q does not exist", spec.AccountCode))
				}
				return nil, err
			}
			touched[spec.AccountCode] = account
		}
		if err := entry.AddLine(account.ID, spec.Debit, spec.Credit); err != nil {
			return nil, err
		}
	}

	if err := entryRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	// The balance is read after the append so it includes the new lines.
	for code, account := range touched {
		if !account.IsLiquid() {
			continue
		}
		balance, err := accountRepo.Balance(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("%s balance negative: %w", code, shared.ErrInsufficientFunds)
		}
	}

	return entry, nil
}
