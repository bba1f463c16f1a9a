package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequisition(t *testing.T, requester uuid.UUID) *Requisition {
	t.Helper()
	req, err := NewRequisition(uuid.New(), requester, "Office restock")
	require.NoError(t, err)
	require.NoError(t, req.AddItem(uuid.New(), decimal.NewFromInt(10), ""))
	require.NoError(t, req.Submit())
	return req
}

func TestRequisitionLifecycle(t *testing.T) {
	requester := uuid.New()
	approver := uuid.New()

	t.Run("draft to approved", func(t *testing.T) {
		req := newPendingRequisition(t, requester)
		require.NoError(t, req.Decide(approver, DecisionApproved, "ok"))
		assert.Equal(t, RequisitionApproved, req.Status)
		require.Len(t, req.Approvals, 1)
		assert.Equal(t, approver, req.Approvals[0].ApproverID)
	})

	t.Run("cannot submit empty draft", func(t *testing.T) {
		req, err := NewRequisition(uuid.New(), requester, "Empty")
		require.NoError(t, err)
		assert.Error(t, req.Submit())
	})

	t.Run("cannot edit after submission", func(t *testing.T) {
		req := newPendingRequisition(t, requester)
		assert.Error(t, req.AddItem(uuid.New(), decimal.NewFromInt(1), ""))
	})

	t.Run("self-approval is forbidden", func(t *testing.T) {
		req := newPendingRequisition(t, requester)
		err := req.Decide(requester, DecisionApproved, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own requisition")
		assert.Equal(t, RequisitionPendingApproval, req.Status)
		assert.Empty(t, req.Approvals)
	})

	t.Run("decided requisition is immutable", func(t *testing.T) {
		req := newPendingRequisition(t, requester)
		require.NoError(t, req.Decide(approver, DecisionRejected, "budget"))

		assert.Error(t, req.Decide(approver, DecisionApproved, "changed my mind"))
		assert.Error(t, req.Submit())
		assert.Len(t, req.Approvals, 1)
	})

	t.Run("rejects unknown decision", func(t *testing.T) {
		req := newPendingRequisition(t, requester)
		assert.Error(t, req.Decide(approver, ApprovalDecision("maybe"), ""))
	})
}
