package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/tradecore/backend/internal/application/catalog"
)

// CategoryHandler handles product category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create creates a category
func (h *CategoryHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// GetByID retrieves a category by ID
func (h *CategoryHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), companyID, categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Update updates a category's details
func (h *CategoryHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), companyID, categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Move reparents a category
func (h *CategoryHandler) Move(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Move(c.Request.Context(), companyID, categoryID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Discontinue marks a category as discontinued
func (h *CategoryHandler) Discontinue(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.categoryService.Discontinue(c.Request.Context(), companyID, categoryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Tree returns the full category tree for the company
func (h *CategoryHandler) Tree(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tree, err := h.categoryService.Tree(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tree)
}

// AttachIdentifier attaches a required identifier type to a category
func (h *CategoryHandler) AttachIdentifier(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.AttachIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.categoryService.AttachIdentifier(c.Request.Context(), companyID, categoryID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DetachIdentifier removes a required identifier type from a category
func (h *CategoryHandler) DetachIdentifier(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Identifier code is required")
		return
	}

	if err := h.categoryService.DetachIdentifier(c.Request.Context(), companyID, categoryID, code); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RequiredIdentifiers lists the identifier types a category requires,
// including those inherited from ancestors.
func (h *CategoryHandler) RequiredIdentifiers(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	identifiers, err := h.categoryService.RequiredIdentifiers(c.Request.Context(), companyID, categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, identifiers)
}

// ListIdentifierTypes lists the identifier type registry
func (h *CategoryHandler) ListIdentifierTypes(c *gin.Context) {
	types, err := h.categoryService.ListIdentifierTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}
