package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderNumber(t *testing.T) {
	assert.Equal(t, "PO-000001", BuildOrderNumber(1))
	assert.Equal(t, "PO-000042", BuildOrderNumber(42))
	assert.Equal(t, "PO-123456", BuildOrderNumber(123456))
}

func newSubmittedOrder(t *testing.T, qty, price int64) *PurchaseOrder {
	t.Helper()
	po, err := NewPurchaseOrder(uuid.New(), uuid.New(), BuildOrderNumber(1))
	require.NoError(t, err)
	require.NoError(t, po.AddLine(uuid.New(), decimal.NewFromInt(qty), decimal.NewFromInt(price)))
	require.NoError(t, po.Submit())
	return po
}

func TestPurchaseOrderLifecycle(t *testing.T) {
	t.Run("cannot submit empty order", func(t *testing.T) {
		po, err := NewPurchaseOrder(uuid.New(), uuid.New(), BuildOrderNumber(1))
		require.NoError(t, err)
		assert.Error(t, po.Submit())
	})

	t.Run("cannot edit after submit", func(t *testing.T) {
		po := newSubmittedOrder(t, 1, 1000)
		assert.Error(t, po.AddLine(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(10)))
	})

	t.Run("total sums lines", func(t *testing.T) {
		po, err := NewPurchaseOrder(uuid.New(), uuid.New(), BuildOrderNumber(2))
		require.NoError(t, err)
		require.NoError(t, po.AddLine(uuid.New(), decimal.NewFromInt(2), decimal.NewFromInt(500)))
		require.NoError(t, po.AddLine(uuid.New(), decimal.NewFromInt(3), decimal.NewFromInt(100)))
		assert.True(t, po.Total().Equal(decimal.NewFromInt(1300)))
	})
}

func TestPurchaseOrderAcknowledge(t *testing.T) {
	po := newSubmittedOrder(t, 1, 1000)

	po.Acknowledge()
	require.NotNil(t, po.AcknowledgedAt)
	first := *po.AcknowledgedAt

	po.Acknowledge()
	assert.Equal(t, first, *po.AcknowledgedAt)
}

func TestPurchaseOrderRecordReceipt(t *testing.T) {
	po := newSubmittedOrder(t, 5, 100)
	lineID := po.Lines[0].ID

	require.NoError(t, po.RecordReceipt(lineID, decimal.NewFromInt(3)))
	assert.True(t, po.Lines[0].ReceivedQty.Equal(decimal.NewFromInt(3)))
	assert.True(t, po.Lines[0].Outstanding().Equal(decimal.NewFromInt(2)))

	t.Run("over-receipt rejected", func(t *testing.T) {
		err := po.RecordReceipt(lineID, decimal.NewFromInt(3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds outstanding")
	})

	t.Run("remaining quantity accepted", func(t *testing.T) {
		require.NoError(t, po.RecordReceipt(lineID, decimal.NewFromInt(2)))
		assert.True(t, po.Lines[0].Outstanding().IsZero())
	})

	t.Run("unknown line", func(t *testing.T) {
		assert.Error(t, po.RecordReceipt(uuid.New(), decimal.NewFromInt(1)))
	})
}
