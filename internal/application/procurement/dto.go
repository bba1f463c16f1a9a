package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/procurement"
)

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	TradeLicense string `json:"trade_license"`
	TRN          string `json:"trn"`
	IBAN         string `json:"iban"`
	SWIFT        string `json:"swift"`
	Address      string `json:"address"`
}

// UpdateSupplierRequest represents a request to update supplier details
type UpdateSupplierRequest struct {
	TradeLicense *string `json:"trade_license"`
	TRN          *string `json:"trn"`
	IBAN         *string `json:"iban"`
	SWIFT        *string `json:"swift"`
	Address      *string `json:"address"`
}

// VerifySupplierOTPRequest carries the code a supplier contact received
type VerifySupplierOTPRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	TradeLicense string    `json:"trade_license,omitempty"`
	TRN          string    `json:"trn,omitempty"`
	IBAN         string    `json:"iban,omitempty"`
	SWIFT        string    `json:"swift,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsConnected  bool      `json:"is_connected"`
	HasDocument  bool      `json:"has_document"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRequisitionRequest represents a request to open a purchase requisition
type CreateRequisitionRequest struct {
	Title string                   `json:"title" binding:"required,min=1,max=200"`
	Items []RequisitionItemRequest `json:"items" binding:"omitempty,dive"`
}

// RequisitionItemRequest is one requested product line
type RequisitionItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Note      string          `json:"note" binding:"max=500"`
}

// DecideRequest records an approval or rejection
type DecideRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Note     string `json:"note" binding:"max=500"`
}

// RequisitionResponse represents a requisition in API responses
type RequisitionResponse struct {
	ID          uuid.UUID                 `json:"id"`
	CompanyID   uuid.UUID                 `json:"company_id"`
	RequestedBy uuid.UUID                 `json:"requested_by"`
	Title       string                    `json:"title"`
	Status      string                    `json:"status"`
	Items       []RequisitionItemResponse `json:"items"`
	Approvals   []ApprovalResponse        `json:"approvals,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// RequisitionItemResponse is one requested line in API responses
type RequisitionItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// ApprovalResponse is one approval trail row in API responses
type ApprovalResponse struct {
	ApproverID uuid.UUID `json:"approver_id"`
	Decision   string    `json:"decision"`
	Note       string    `json:"note,omitempty"`
	DecidedAt  time.Time `json:"decided_at"`
}

// CreateQuotationRequest represents a request to record supplier pricing
type CreateQuotationRequest struct {
	SupplierID    uuid.UUID              `json:"supplier_id" binding:"required"`
	RequisitionID *uuid.UUID             `json:"requisition_id"`
	Reference     string                 `json:"reference" binding:"required,min=1,max=100"`
	Lines         []QuotationLineRequest `json:"lines" binding:"omitempty,dive"`
}

// QuotationLineRequest is one quoted product line
type QuotationLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	EAN       string          `json:"ean"`
	Serials   []string        `json:"serials"`
}

// QuotationResponse represents a quotation request in API responses
type QuotationResponse struct {
	ID            uuid.UUID               `json:"id"`
	CompanyID     uuid.UUID               `json:"company_id"`
	SupplierID    uuid.UUID               `json:"supplier_id"`
	RequisitionID *uuid.UUID              `json:"requisition_id,omitempty"`
	Reference     string                  `json:"reference"`
	Lines         []QuotationLineResponse `json:"lines"`
	CreatedAt     time.Time               `json:"created_at"`
}

// QuotationLineResponse is one quoted line in API responses
type QuotationLineResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	EAN        string          `json:"ean,omitempty"`
	Serials    []string        `json:"serials,omitempty"`
	Selected   bool            `json:"selected"`
	SelectedAt *time.Time      `json:"selected_at,omitempty"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID             uuid.UUID                   `json:"id"`
	CompanyID      uuid.UUID                   `json:"company_id"`
	SupplierID     uuid.UUID                   `json:"supplier_id"`
	OrderNumber    string                      `json:"order_number"`
	Status         string                      `json:"status"`
	AcknowledgedAt *time.Time                  `json:"acknowledged_at,omitempty"`
	Lines          []PurchaseOrderLineResponse `json:"lines"`
	Total          decimal.Decimal             `json:"total"`
	CreatedAt      time.Time                   `json:"created_at"`
}

// PurchaseOrderLineResponse is one ordered line in API responses
type PurchaseOrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ReceivedQty decimal.Decimal `json:"received_qty"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CreateReceiptRequest represents goods arriving against an order line
type CreateReceiptRequest struct {
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id" binding:"required"`
	OrderLineID     uuid.UUID       `json:"order_line_id" binding:"required"`
	WarehouseID     uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	EAN             string          `json:"ean"`
	Serials         []string        `json:"serials"`
}

// GoodsReceiptResponse represents a goods receipt in API responses
type GoodsReceiptResponse struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id"`
	OrderLineID     uuid.UUID       `json:"order_line_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	WarehouseID     uuid.UUID       `json:"warehouse_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	EAN             string          `json:"ean,omitempty"`
	Serials         []string        `json:"serials,omitempty"`
	AppliedAt       *time.Time      `json:"applied_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateInvoiceRequest represents a supplier invoice arriving
type CreateInvoiceRequest struct {
	SupplierID      uuid.UUID       `json:"supplier_id" binding:"required"`
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id" binding:"required"`
	InvoiceNumber   string          `json:"invoice_number" binding:"required,min=1,max=100"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// InvoiceResponse represents a supplier invoice in API responses
type InvoiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id"`
	InvoiceNumber   string          `json:"invoice_number"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	DecidedBy       *uuid.UUID      `json:"decided_by,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreatePaymentRequest represents a payment request against a purchase order
type CreatePaymentRequest struct {
	SupplierID      uuid.UUID       `json:"supplier_id" binding:"required"`
	PurchaseOrderID uuid.UUID       `json:"purchase_order_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Method          string          `json:"method" binding:"required,oneof=cash bank"`
	IsAdvance       bool            `json:"is_advance"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID              uuid.UUID          `json:"id"`
	CompanyID       uuid.UUID          `json:"company_id"`
	SupplierID      uuid.UUID          `json:"supplier_id"`
	PurchaseOrderID uuid.UUID          `json:"purchase_order_id"`
	Amount          decimal.Decimal    `json:"amount"`
	Method          string             `json:"method"`
	IsAdvance       bool               `json:"is_advance"`
	Status          string             `json:"status"`
	RequestedBy     uuid.UUID          `json:"requested_by"`
	Approvals       []ApprovalResponse `json:"approvals,omitempty"`
	PostedAt        *time.Time         `json:"posted_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ToSupplierResponse converts a supplier aggregate to a response DTO
func ToSupplierResponse(s *procurement.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:           s.ID,
		CompanyID:    s.CompanyID,
		Name:         s.Name,
		Email:        s.Email,
		Phone:        s.Phone,
		TradeLicense: s.TradeLicense,
		TRN:          s.TRN,
		IBAN:         s.IBAN,
		SWIFT:        s.SWIFT,
		Address:      s.Address,
		IsConnected:  s.IsConnected,
		HasDocument:  s.DocumentKey != "",
		CreatedAt:    s.CreatedAt,
	}
}

// ToRequisitionResponse converts a requisition aggregate to a response DTO
func ToRequisitionResponse(r *procurement.Requisition) *RequisitionResponse {
	items := make([]RequisitionItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = RequisitionItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		}
	}

	approvals := make([]ApprovalResponse, len(r.Approvals))
	for i, a := range r.Approvals {
		approvals[i] = ApprovalResponse{
			ApproverID: a.ApproverID,
			Decision:   string(a.Decision),
			Note:       a.Note,
			DecidedAt:  a.DecidedAt,
		}
	}

	return &RequisitionResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		RequestedBy: r.RequestedBy,
		Title:       r.Title,
		Status:      string(r.Status),
		Items:       items,
		Approvals:   approvals,
		CreatedAt:   r.CreatedAt,
	}
}

// ToQuotationResponse converts a quotation aggregate to a response DTO
func ToQuotationResponse(q *procurement.QuotationRequest) *QuotationResponse {
	lines := make([]QuotationLineResponse, len(q.Lines))
	for i := range q.Lines {
		l := &q.Lines[i]
		lines[i] = QuotationLineResponse{
			ID:         l.ID,
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			EAN:        l.EAN,
			Serials:    l.Serials(),
			Selected:   l.Selected,
			SelectedAt: l.SelectedAt,
		}
	}

	return &QuotationResponse{
		ID:            q.ID,
		CompanyID:     q.CompanyID,
		SupplierID:    q.SupplierID,
		RequisitionID: q.RequisitionID,
		Reference:     q.Reference,
		Lines:         lines,
		CreatedAt:     q.CreatedAt,
	}
}

// ToPurchaseOrderResponse converts a purchase order aggregate to a response DTO
func ToPurchaseOrderResponse(po *procurement.PurchaseOrder) *PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(po.Lines))
	for i := range po.Lines {
		l := &po.Lines[i]
		lines[i] = PurchaseOrderLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			ReceivedQty: l.ReceivedQty,
			Outstanding: l.Outstanding(),
		}
	}

	return &PurchaseOrderResponse{
		ID:             po.ID,
		CompanyID:      po.CompanyID,
		SupplierID:     po.SupplierID,
		OrderNumber:    po.OrderNumber,
		Status:         string(po.Status),
		AcknowledgedAt: po.AcknowledgedAt,
		Lines:          lines,
		Total:          po.Total(),
		CreatedAt:      po.CreatedAt,
	}
}

// ToGoodsReceiptResponse converts a goods receipt aggregate to a response DTO
func ToGoodsReceiptResponse(g *procurement.GoodsReceipt) *GoodsReceiptResponse {
	return &GoodsReceiptResponse{
		ID:              g.ID,
		CompanyID:       g.CompanyID,
		PurchaseOrderID: g.PurchaseOrderID,
		OrderLineID:     g.OrderLineID,
		ProductID:       g.ProductID,
		WarehouseID:     g.WarehouseID,
		Quantity:        g.Quantity,
		EAN:             g.EAN,
		Serials:         g.Serials(),
		AppliedAt:       g.AppliedAt,
		CreatedAt:       g.CreatedAt,
	}
}

// ToInvoiceResponse converts an invoice aggregate to a response DTO
func ToInvoiceResponse(inv *procurement.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:              inv.ID,
		CompanyID:       inv.CompanyID,
		SupplierID:      inv.SupplierID,
		PurchaseOrderID: inv.PurchaseOrderID,
		InvoiceNumber:   inv.InvoiceNumber,
		Amount:          inv.Amount,
		Status:          string(inv.Status),
		DecidedBy:       inv.DecidedBy,
		DecidedAt:       inv.DecidedAt,
		CreatedAt:       inv.CreatedAt,
	}
}

// ToPaymentResponse converts a payment aggregate to a response DTO
func ToPaymentResponse(p *procurement.Payment) *PaymentResponse {
	approvals := make([]ApprovalResponse, len(p.Approvals))
	for i, a := range p.Approvals {
		approvals[i] = ApprovalResponse{
			ApproverID: a.ApproverID,
			Decision:   string(a.Decision),
			Note:       a.Note,
			DecidedAt:  a.DecidedAt,
		}
	}

	return &PaymentResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		SupplierID:      p.SupplierID,
		PurchaseOrderID: p.PurchaseOrderID,
		Amount:          p.Amount,
		Method:          string(p.Method),
		IsAdvance:       p.IsAdvance,
		Status:          string(p.Status),
		RequestedBy:     p.RequestedBy,
		Approvals:       approvals,
		PostedAt:        p.PostedAt,
		CreatedAt:       p.CreatedAt,
	}
}
