package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/tradecore/backend/internal/application/identity"
)

// CompanyHandler handles company administration endpoints. Everything except
// registration is reserved for superusers; the router enforces that.
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Register registers a new company with its first administrator
func (h *CompanyHandler) Register(c *gin.Context) {
	var req identityapp.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	company, err := h.companyService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, company)
}

// GetByID retrieves a company by ID
func (h *CompanyHandler) GetByID(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Update updates mutable company fields
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	var req identityapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Suspend suspends a company, locking out its users
func (h *CompanyHandler) Suspend(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	if err := h.companyService.Suspend(c.Request.Context(), companyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate reactivates a suspended company
func (h *CompanyHandler) Activate(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid company ID format")
		return
	}

	if err := h.companyService.Activate(c.Request.Context(), companyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// List lists companies
func (h *CompanyHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BindError(c, err)
		return
	}

	companies, err := h.companyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, companies)
}
