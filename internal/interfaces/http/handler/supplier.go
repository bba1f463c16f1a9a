package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	procurementapp "github.com/tradecore/backend/internal/application/procurement"
)

// SupplierHandler handles supplier endpoints, including document exchange and
// contact verification.
type SupplierHandler struct {
	BaseHandler
	supplierService *procurementapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *procurementapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// DocumentUploadRequest asks for a presigned upload slot for a supplier document
type DocumentUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	ContentType string `json:"content_type" binding:"required,min=1,max=100"`
}

// PresignedURLResponse carries a presigned URL and its expiry
type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPResponse carries a generated one-time code
type OTPResponse struct {
	Code string `json:"code"`
}

// Create creates a supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req procurementapp.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, supplier)
}

// GetByID retrieves a supplier by ID
func (h *SupplierHandler) GetByID(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), companyID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, supplier)
}

// List lists suppliers
func (h *SupplierHandler) List(c *gin.Context) {
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

	page, err := h.supplierService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates supplier compliance details
func (h *SupplierHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req procurementapp.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), companyID, supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, supplier)
}

// RequestDocumentUpload issues a presigned URL for uploading a supplier document
func (h *SupplierHandler) RequestDocumentUpload(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req DocumentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	url, expiresAt, err := h.supplierService.RequestDocumentUpload(c.Request.Context(), companyID, supplierID, req.FileName, req.ContentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PresignedURLResponse{URL: url, ExpiresAt: expiresAt})
}

// DocumentDownloadURL issues a presigned URL for downloading the supplier document
func (h *SupplierHandler) DocumentDownloadURL(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	url, expiresAt, err := h.supplierService.DocumentDownloadURL(c.Request.Context(), companyID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PresignedURLResponse{URL: url, ExpiresAt: expiresAt})
}

// GenerateOTP generates a one-time code for verifying the supplier contact.
// The code is returned to the caller for delivery out of band.
func (h *SupplierHandler) GenerateOTP(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	code, err := h.supplierService.GenerateOTP(c.Request.Context(), companyID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, OTPResponse{Code: code})
}

// VerifyOTP verifies a one-time code and marks the supplier as connected
func (h *SupplierHandler) VerifyOTP(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	supplierID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req procurementapp.VerifySupplierOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.VerifyOTP(c.Request.Context(), companyID, supplierID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, supplier)
}
