package procurement

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// RequisitionStatus represents the state of a purchase requisition
type RequisitionStatus string

const (
	RequisitionDraft           RequisitionStatus = "draft"
	RequisitionPendingApproval RequisitionStatus = "pending_approval"
	RequisitionApproved        RequisitionStatus = "approved"
	RequisitionRejected        RequisitionStatus = "rejected"
)

// IsValid checks if the requisition status is valid
func (s RequisitionStatus) IsValid() bool {
	switch s {
	case RequisitionDraft, RequisitionPendingApproval, RequisitionApproved, RequisitionRejected:
		return true
	}
	return false
}

// IsDecided reports whether the requisition has reached a terminal state
func (s RequisitionStatus) IsDecided() bool {
	return s == RequisitionApproved || s == RequisitionRejected
}

// ApprovalDecision is the outcome recorded in an approval trail row
type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "approved"
	DecisionRejected ApprovalDecision = "rejected"
)

// Requisition is an internal purchase request that must be approved before
// quotations are gathered. Decided requisitions are immutable.
type Requisition struct {
	shared.CompanyAggregateRoot
	RequestedBy uuid.UUID
	Title       string
	Status      RequisitionStatus
	Items       []RequisitionItem `gorm:"foreignKey:RequisitionID"`
	Approvals   []RequisitionApproval `gorm:"foreignKey:RequisitionID"`
}

// TableName returns the database table name
func (Requisition) TableName() string {
	return "purchase_requisitions"
}

// RequisitionItem is a requested product line
type RequisitionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequisitionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Note          string          `gorm:"size:500"`
	CreatedAt     time.Time
}

// TableName returns the database table name
func (RequisitionItem) TableName() string {
	return "purchase_requisition_items"
}

// RequisitionApproval is an immutable approval trail row
type RequisitionApproval struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RequisitionID uuid.UUID        `gorm:"type:uuid;not null;index"`
	ApproverID    uuid.UUID        `gorm:"type:uuid;not null"`
	Decision      ApprovalDecision `gorm:"size:20;not null"`
	Note          string           `gorm:"size:500"`
	DecidedAt     time.Time        `gorm:"not null"`
}

// TableName returns the database table name
func (RequisitionApproval) TableName() string {
	return "requisition_approvals"
}

// NewRequisition creates a draft requisition
func NewRequisition(companyID, requestedBy uuid.UUID, title string) (*Requisition, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_REQUISITION_TITLE", "Requisition title cannot be empty")
	}

	return &Requisition{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, requestedBy),
		RequestedBy:          requestedBy,
		Title:                title,
		Status:               RequisitionDraft,
	}, nil
}

// AddItem appends a line. Only drafts can be edited.
func (r *Requisition) AddItem(productID uuid.UUID, quantity decimal.Decimal, note string) error {
	if r.Status != RequisitionDraft {
		return shared.ErrInvalidState
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Requisition quantity must be positive")
	}

	r.Items = append(r.Items, RequisitionItem{
		ID:            uuid.New(),
		RequisitionID: r.ID,
		ProductID:     productID,
		Quantity:      quantity,
		Note:          note,
		CreatedAt:     time.Now(),
	})
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Submit moves the draft into pending approval. Empty requisitions cannot be
// submitted.
func (r *Requisition) Submit() error {
	if r.Status != RequisitionDraft {
		return shared.ErrInvalidState
	}
	if len(r.Items) == 0 {
		return shared.NewDomainError("EMPTY_REQUISITION", "Cannot submit a requisition without items")
	}

	r.Status = RequisitionPendingApproval
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewRequisitionSubmittedEvent(r))

	return nil
}

// Decide records an approval or rejection. The approver must differ from the
// requester, the requisition must be pending, and the trail row is appended,
// never replaced.
func (r *Requisition) Decide(approverID uuid.UUID, decision ApprovalDecision, note string) error {
	if r.Status != RequisitionPendingApproval {
		return shared.ErrInvalidState
	}
	if approverID == r.RequestedBy {
		return shared.NewDomainError("SELF_APPROVAL", "Requester cannot approve their own requisition")
	}
	if decision != DecisionApproved && decision != DecisionRejected {
		return shared.NewDomainError("INVALID_DECISION", "Unknown approval decision")
	}

	r.Approvals = append(r.Approvals, RequisitionApproval{
		ID:            uuid.New(),
		RequisitionID: r.ID,
		ApproverID:    approverID,
		Decision:      decision,
		Note:          note,
		DecidedAt:     time.Now(),
	})

	if decision == DecisionApproved {
		r.Status = RequisitionApproved
	} else {
		r.Status = RequisitionRejected
	}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewRequisitionDecidedEvent(r, decision))

	return nil
}
