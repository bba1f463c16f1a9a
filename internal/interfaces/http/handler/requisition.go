package handler

import (
	"github.com/gin-gonic/gin"
	procurementapp "github.com/tradecore/backend/internal/application/procurement"
)

// RequisitionHandler handles purchase requisition endpoints
type RequisitionHandler struct {
	BaseHandler
	requisitionService *procurementapp.RequisitionService
}

// NewRequisitionHandler creates a new RequisitionHandler
func NewRequisitionHandler(requisitionService *procurementapp.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{requisitionService: requisitionService}
}

// Create opens a requisition in draft
func (h *RequisitionHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req procurementapp.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	requisition, err := h.requisitionService.Create(c.Request.Context(), companyID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, requisition)
}

// GetByID retrieves a requisition by ID
func (h *RequisitionHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requisitionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	requisition, err := h.requisitionService.GetByID(c.Request.Context(), companyID, requisitionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, requisition)
}

// List lists requisitions
func (h *RequisitionHandler) List(c *gin.Context) {
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

	page, err := h.requisitionService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// AddItem adds a line to a draft requisition
func (h *RequisitionHandler) AddItem(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requisitionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	var req procurementapp.RequisitionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	requisition, err := h.requisitionService.AddItem(c.Request.Context(), companyID, requisitionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, requisition)
}

// Submit moves a requisition from draft to submitted
func (h *RequisitionHandler) Submit(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requisitionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	requisition, err := h.requisitionService.Submit(c.Request.Context(), companyID, requisitionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, requisition)
}

// Decide approves or rejects a submitted requisition
func (h *RequisitionHandler) Decide(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	requisitionID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	var req procurementapp.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	requisition, err := h.requisitionService.Decide(c.Request.Context(), companyID, requisitionID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, requisition)
}
