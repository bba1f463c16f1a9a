package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/tradecore/backend/internal/application/identity"
)

// AuditHandler handles audit trail queries
type AuditHandler struct {
	BaseHandler
	auditService *identityapp.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *identityapp.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List lists audit records for the caller's company
func (h *AuditHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter identityapp.AuditLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.auditService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
