package procurement

import (
	"github.com/tradecore/backend/internal/domain/shared"
)

// Event types for the procurement context
const (
	EventSupplierCreated      = "procurement.supplier.created"
	EventSupplierConnected    = "procurement.supplier.connected"
	EventRequisitionSubmitted = "procurement.requisition.submitted"
	EventRequisitionDecided   = "procurement.requisition.decided"
	EventPurchaseOrderCreated   = "procurement.purchase_order.created"
	EventPurchaseOrderSubmitted = "procurement.purchase_order.submitted"
)

// SupplierCreatedEvent is emitted when a supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSupplierCreatedEvent creates a supplier created event
func NewSupplierCreatedEvent(s *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSupplierCreated, "Supplier", s.ID, s.CompanyID),
		Name:            s.Name,
		Email:           s.Email,
	}
}

// SupplierConnectedEvent is emitted when a supplier verifies via OTP
type SupplierConnectedEvent struct {
	shared.BaseDomainEvent
}

// NewSupplierConnectedEvent creates a supplier connected event
func NewSupplierConnectedEvent(s *Supplier) *SupplierConnectedEvent {
	return &SupplierConnectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSupplierConnected, "Supplier", s.ID, s.CompanyID),
	}
}

// RequisitionSubmittedEvent is emitted when a requisition enters approval
type RequisitionSubmittedEvent struct {
	shared.BaseDomainEvent
	Title string `json:"title"`
}

// NewRequisitionSubmittedEvent creates a requisition submitted event
func NewRequisitionSubmittedEvent(r *Requisition) *RequisitionSubmittedEvent {
	return &RequisitionSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRequisitionSubmitted, "Requisition", r.ID, r.CompanyID),
		Title:           r.Title,
	}
}

// RequisitionDecidedEvent is emitted when a requisition is approved or rejected
type RequisitionDecidedEvent struct {
	shared.BaseDomainEvent
	Decision string `json:"decision"`
}

// NewRequisitionDecidedEvent creates a requisition decided event
func NewRequisitionDecidedEvent(r *Requisition, decision ApprovalDecision) *RequisitionDecidedEvent {
	return &RequisitionDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRequisitionDecided, "Requisition", r.ID, r.CompanyID),
		Decision:        string(decision),
	}
}

// PurchaseOrderCreatedEvent is emitted when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
}

// NewPurchaseOrderCreatedEvent creates a purchase order created event
func NewPurchaseOrderCreatedEvent(po *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderCreated, "PurchaseOrder", po.ID, po.CompanyID),
		OrderNumber:     po.OrderNumber,
	}
}

// PurchaseOrderSubmittedEvent is emitted when a purchase order is submitted
type PurchaseOrderSubmittedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
}

// NewPurchaseOrderSubmittedEvent creates a purchase order submitted event
func NewPurchaseOrderSubmittedEvent(po *PurchaseOrder) *PurchaseOrderSubmittedEvent {
	return &PurchaseOrderSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderSubmitted, "PurchaseOrder", po.ID, po.CompanyID),
		OrderNumber:     po.OrderNumber,
	}
}
