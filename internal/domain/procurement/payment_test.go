package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingPayment(t *testing.T, requester uuid.UUID, method PaymentMethod, isAdvance bool) *Payment {
	t.Helper()
	p, err := NewPayment(uuid.New(), uuid.New(), uuid.New(), requester, decimal.NewFromInt(200), method, isAdvance)
	require.NoError(t, err)
	return p
}

func TestPaymentCreation(t *testing.T) {
	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), uuid.New(), uuid.New(), uuid.New(), decimal.Zero, PaymentMethodCash, false)
		assert.Error(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(100), PaymentMethod("cheque"), false)
		assert.Error(t, err)
	})
}

func TestPaymentDecide(t *testing.T) {
	requester := uuid.New()
	approver := uuid.New()

	t.Run("approve", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, true)
		require.NoError(t, p.Decide(approver, DecisionApproved, "ok"))
		assert.Equal(t, PaymentApproved, p.Status)
		assert.Len(t, p.Approvals, 1)
	})

	t.Run("self-approval forbidden", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, false)
		err := p.Decide(requester, DecisionApproved, "")
		require.Error(t, err)
		assert.Equal(t, PaymentPending, p.Status)
	})

	t.Run("decided payment cannot be decided again", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodBank, false)
		require.NoError(t, p.Decide(approver, DecisionRejected, "no"))
		assert.Error(t, p.Decide(approver, DecisionApproved, ""))
	})
}

func TestPaymentPostingAccounts(t *testing.T) {
	requester := uuid.New()

	t.Run("advance by cash", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, true)
		debit, credit := p.PostingAccounts(false)
		assert.Equal(t, PostingAccountSupplierAdvance, debit)
		assert.Equal(t, PostingAccountCash, credit)
	})

	t.Run("advance by bank", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodBank, true)
		debit, credit := p.PostingAccounts(false)
		assert.Equal(t, PostingAccountSupplierAdvance, debit)
		assert.Equal(t, PostingAccountBank, credit)
	})

	t.Run("final after advance settles against the advance", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, false)
		debit, credit := p.PostingAccounts(true)
		assert.Equal(t, PostingAccountSupplier, debit)
		assert.Equal(t, PostingAccountSupplierAdvance, credit)
	})

	t.Run("final without advance pays from the liquid account", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodBank, false)
		debit, credit := p.PostingAccounts(false)
		assert.Equal(t, PostingAccountSupplier, debit)
		assert.Equal(t, PostingAccountBank, credit)
	})
}

func TestPaymentMarkPosted(t *testing.T) {
	requester := uuid.New()
	approver := uuid.New()

	t.Run("pending payment cannot be posted", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, false)
		assert.Error(t, p.MarkPosted())
	})

	t.Run("approved payment posts exactly once", func(t *testing.T) {
		p := newPendingPayment(t, requester, PaymentMethodCash, false)
		require.NoError(t, p.Decide(approver, DecisionApproved, ""))

		require.NoError(t, p.MarkPosted())
		assert.NotNil(t, p.PostedAt)

		assert.Error(t, p.MarkPosted())
	})
}
