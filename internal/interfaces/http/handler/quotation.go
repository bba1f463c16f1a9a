package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/tradecore/backend/internal/application/procurement"
)

// QuotationHandler handles quotation request endpoints
type QuotationHandler struct {
	BaseHandler
	quotationService *procurementapp.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotationService *procurementapp.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Create records supplier pricing for a requisition
func (h *QuotationHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req procurementapp.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quotation, err := h.quotationService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, quotation)
}

// GetByID retrieves a quotation request by ID
func (h *QuotationHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quotationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	quotation, err := h.quotationService.GetByID(c.Request.Context(), companyID, quotationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quotation)
}

// List lists quotation requests
func (h *QuotationHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.quotationService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// AddLine adds a quoted line to a quotation request
func (h *QuotationHandler) AddLine(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quotationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	var req procurementapp.QuotationLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	quotation, err := h.quotationService.AddLine(c.Request.Context(), companyID, quotationID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quotation)
}

// SelectLine selects a quoted line and creates a draft purchase order from it
func (h *QuotationHandler) SelectLine(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	quotationID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	lineID, err := parseIDParam(c, "line_id")
	if err != nil {
		h.BadRequest(c, "Invalid line ID format")
		return
	}

	order, err := h.quotationService.SelectLine(c.Request.Context(), companyID, quotationID, lineID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}
