package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceThreeWayMatch(t *testing.T) {
	inv, err := NewInvoice(uuid.New(), uuid.New(), uuid.New(), "INV-001", decimal.NewFromInt(1000))
	require.NoError(t, err)

	thousand := decimal.NewFromInt(1000)

	assert.NoError(t, inv.ThreeWayMatch(thousand, thousand))
	assert.Error(t, inv.ThreeWayMatch(thousand, decimal.NewFromInt(800)))
	assert.Error(t, inv.ThreeWayMatch(decimal.NewFromInt(800), decimal.NewFromInt(800)))
}

func TestInvoiceApproval(t *testing.T) {
	approver := uuid.New()
	thousand := decimal.NewFromInt(1000)

	t.Run("approve with matching totals", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), uuid.New(), uuid.New(), "INV-001", thousand)
		require.NoError(t, err)

		require.NoError(t, inv.Approve(approver, thousand, thousand))
		assert.Equal(t, InvoiceApproved, inv.Status)
		assert.Equal(t, approver, *inv.DecidedBy)
	})

	t.Run("mismatch blocks approval", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), uuid.New(), uuid.New(), "INV-002", thousand)
		require.NoError(t, err)

		err = inv.Approve(approver, thousand, decimal.NewFromInt(500))
		require.Error(t, err)
		assert.Equal(t, InvoicePending, inv.Status)
	})

	t.Run("decided invoice is immutable", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), uuid.New(), uuid.New(), "INV-003", thousand)
		require.NoError(t, err)

		require.NoError(t, inv.Reject(approver))
		assert.Error(t, inv.Approve(approver, thousand, thousand))
		assert.Error(t, inv.Reject(approver))
	})

	t.Run("rejects invalid construction", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), uuid.New(), uuid.New(), "", thousand)
		assert.Error(t, err)
		_, err = NewInvoice(uuid.New(), uuid.New(), uuid.New(), "INV-004", decimal.Zero)
		assert.Error(t, err)
	})
}
