package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/tradecore/backend/internal/application/procurement"
)

// ReceiptHandler handles goods receipt endpoints
type ReceiptHandler struct {
	BaseHandler
	receivingService *procurementapp.ReceivingService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receivingService *procurementapp.ReceivingService) *ReceiptHandler {
	return &ReceiptHandler{receivingService: receivingService}
}

// Receive records goods arriving against a purchase order line and applies
// the stock intake in the same transaction.
func (h *ReceiptHandler) Receive(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req procurementapp.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	receipt, err := h.receivingService.Receive(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, receipt)
}

// GetByID retrieves a goods receipt by ID
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	receiptID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID format")
		return
	}

	receipt, err := h.receivingService.GetByID(c.Request.Context(), companyID, receiptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// ListForOrder lists the receipts recorded against a purchase order
func (h *ReceiptHandler) ListForOrder(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := parseIDParam(c, "order_id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	receipts, err := h.receivingService.ListForOrder(c.Request.Context(), companyID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipts)
}
