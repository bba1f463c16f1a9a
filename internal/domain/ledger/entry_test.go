package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates entry with lines", func(t *testing.T) {
		entry, err := NewEntry(companyID, "open cash")
		require.NoError(t, err)

		require.NoError(t, entry.AddLine(uuid.New(), decimal.NewFromInt(1000), decimal.Zero))
		require.NoError(t, entry.AddLine(uuid.New(), decimal.Zero, decimal.NewFromInt(1000)))

		assert.True(t, entry.TotalDebit().Equal(decimal.NewFromInt(1000)))
		assert.True(t, entry.TotalCredit().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewEntry(companyID, "   ")
		assert.Error(t, err)
	})

	t.Run("rejects negative and empty lines", func(t *testing.T) {
		entry, err := NewEntry(companyID, "bad lines")
		require.NoError(t, err)

		assert.Error(t, entry.AddLine(uuid.New(), decimal.NewFromInt(-1), decimal.Zero))
		assert.Error(t, entry.AddLine(uuid.New(), decimal.Zero, decimal.Zero))
	})

	t.Run("unbalanced entries are the caller's problem", func(t *testing.T) {
		entry, err := NewEntry(companyID, "one-sided")
		require.NoError(t, err)
		require.NoError(t, entry.AddLine(uuid.New(), decimal.NewFromInt(500), decimal.Zero))
		assert.False(t, entry.TotalDebit().Equal(entry.TotalCredit()))
	})
}

func TestAccount(t *testing.T) {
	companyID := uuid.New()

	t.Run("liquid accounts", func(t *testing.T) {
		cash, err := NewAccount(companyID, AccountCash, "cash on hand")
		require.NoError(t, err)
		assert.True(t, cash.IsLiquid())

		supplier, err := NewAccount(companyID, AccountSupplier, "")
		require.NoError(t, err)
		assert.False(t, supplier.IsLiquid())
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewAccount(companyID, "", "")
		assert.Error(t, err)
	})
}
