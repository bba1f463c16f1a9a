package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/tradecore/backend/internal/application/identity"
)

// RoleHandler handles role and capability endpoints
type RoleHandler struct {
	BaseHandler
	roleService *identityapp.RoleService
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleService *identityapp.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// Create creates a role within the caller's company
func (h *RoleHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, role)
}

// GetByID retrieves a role by ID
func (h *RoleHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	role, err := h.roleService.GetByID(c.Request.Context(), companyID, roleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, role)
}

// List lists roles in the caller's company
func (h *RoleHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roles, err := h.roleService.List(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, roles)
}

// SetCapabilities replaces a role's capability set
func (h *RoleHandler) SetCapabilities(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	roleID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	var req identityapp.SetCapabilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	role, err := h.roleService.SetCapabilities(c.Request.Context(), companyID, roleID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, role)
}

// ListCapabilities lists every capability in the registry
func (h *RoleHandler) ListCapabilities(c *gin.Context) {
	h.Success(c, h.roleService.ListCapabilities())
}
