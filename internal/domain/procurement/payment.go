package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// PaymentMethod is how the money leaves the company
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCash || m == PaymentMethodBank
}

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// Ledger account codes the payment posting rule selects between. They mirror
// the ledger context's account codes.
const (
	PostingAccountCash            = "Cash"
	PostingAccountBank            = "Bank"
	PostingAccountSupplier        = "Supplier"
	PostingAccountSupplierAdvance = "Supplier Advance"
)

// Payment is money going to a supplier against a purchase order.
//
// Construction never touches the books. The ledger effect happens exactly
// once, on the pending to approved transition, performed by the payment
// service inside one transaction.
type Payment struct {
	shared.CompanyAggregateRoot
	SupplierID      uuid.UUID
	PurchaseOrderID uuid.UUID
	Amount          decimal.Decimal
	Method          PaymentMethod
	IsAdvance       bool
	Status          PaymentStatus
	RequestedBy     uuid.UUID
	Approvals       []PaymentApproval `gorm:"foreignKey:PaymentID"`
	PostedAt        *time.Time
}

// TableName returns the database table name
func (Payment) TableName() string {
	return "payments"
}

// PaymentApproval is an immutable approval trail row
type PaymentApproval struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PaymentID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	ApproverID uuid.UUID        `gorm:"type:uuid;not null"`
	Decision   ApprovalDecision `gorm:"size:20;not null"`
	Note       string           `gorm:"size:500"`
	DecidedAt  time.Time        `gorm:"not null"`
}

// TableName returns the database table name
func (PaymentApproval) TableName() string {
	return "payment_approvals"
}

// NewPayment creates a pending payment
func NewPayment(companyID, supplierID, poID, requestedBy uuid.UUID, amount decimal.Decimal, method PaymentMethod, isAdvance bool) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	return &Payment{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, requestedBy),
		SupplierID:           supplierID,
		PurchaseOrderID:      poID,
		Amount:               amount,
		Method:               method,
		IsAdvance:            isAdvance,
		Status:               PaymentPending,
		RequestedBy:          requestedBy,
	}, nil
}

// Decide records an approval or rejection. Self-approval is forbidden and a
// decided payment cannot be decided again, which is what guarantees the
// ledger effect fires at most once.
func (p *Payment) Decide(approverID uuid.UUID, decision ApprovalDecision, note string) error {
	if p.Status != PaymentPending {
		return shared.ErrInvalidState
	}
	if approverID == p.RequestedBy {
		return shared.NewDomainError("SELF_APPROVAL", "Requester cannot approve their own payment")
	}
	if decision != DecisionApproved && decision != DecisionRejected {
		return shared.NewDomainError("INVALID_DECISION", "Unknown approval decision")
	}

	p.Approvals = append(p.Approvals, PaymentApproval{
		ID:         uuid.New(),
		PaymentID:  p.ID,
		ApproverID: approverID,
		Decision:   decision,
		Note:       note,
		DecidedAt:  time.Now(),
	})

	if decision == DecisionApproved {
		p.Status = PaymentApproved
	} else {
		p.Status = PaymentRejected
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// liquidAccount maps the payment method to the account the money leaves
func (p *Payment) liquidAccount() string {
	if p.Method == PaymentMethodBank {
		return PostingAccountBank
	}
	return PostingAccountCash
}

// PostingAccounts selects the debit and credit accounts for the ledger
// entry:
//
//   - advance payment: debit Supplier Advance, credit Cash or Bank
//   - final payment:   debit Supplier, credit Supplier Advance when an
//     approved advance exists for the same purchase order, otherwise credit
//     Cash or Bank
func (p *Payment) PostingAccounts(hasApprovedAdvance bool) (debit, credit string) {
	if p.IsAdvance {
		return PostingAccountSupplierAdvance, p.liquidAccount()
	}
	if hasApprovedAdvance {
		return PostingAccountSupplier, PostingAccountSupplierAdvance
	}
	return PostingAccountSupplier, p.liquidAccount()
}

// MarkPosted stamps the payment after its ledger entry is written. Posting
// twice is rejected.
func (p *Payment) MarkPosted() error {
	if p.Status != PaymentApproved {
		return shared.ErrInvalidState
	}
	if p.PostedAt != nil {
		return shared.ErrInvalidState
	}
	now := time.Now()
	p.PostedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}
