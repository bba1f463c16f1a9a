package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationLines(t *testing.T) {
	q, err := NewQuotationRequest(uuid.New(), uuid.New(), nil, "Q-001")
	require.NoError(t, err)

	require.NoError(t, q.AddLine(uuid.New(), decimal.NewFromInt(2), decimal.NewFromInt(500), "4006381333931", []string{"SN-1", "SN-2"}))
	require.Len(t, q.Lines, 1)

	assert.Equal(t, []string{"SN-1", "SN-2"}, q.Lines[0].Serials())

	t.Run("rejects zero quantity", func(t *testing.T) {
		assert.Error(t, q.AddLine(uuid.New(), decimal.Zero, decimal.NewFromInt(10), "", nil))
	})

	t.Run("rejects negative price", func(t *testing.T) {
		assert.Error(t, q.AddLine(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(-1), "", nil))
	})
}

func TestQuotationSelectLine(t *testing.T) {
	q, err := NewQuotationRequest(uuid.New(), uuid.New(), nil, "Q-002")
	require.NoError(t, err)
	require.NoError(t, q.AddLine(uuid.New(), decimal.NewFromInt(1), decimal.NewFromInt(1000), "", nil))
	lineID := q.Lines[0].ID

	line, err := q.SelectLine(lineID)
	require.NoError(t, err)
	assert.True(t, line.Selected)
	assert.NotNil(t, line.SelectedAt)

	t.Run("second selection fails", func(t *testing.T) {
		_, err := q.SelectLine(lineID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been selected")
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := q.SelectLine(uuid.New())
		assert.Error(t, err)
	})
}

func TestQuotationSerialsEmpty(t *testing.T) {
	line := QuotationLine{SerialList: ""}
	assert.Nil(t, line.Serials())

	line.SerialList = " SN-1 , , SN-2 "
	assert.Equal(t, []string{"SN-1", "SN-2"}, line.Serials())
}
