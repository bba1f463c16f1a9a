package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/catalog"
)

// CreateCategoryRequest is the request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Code        string     `json:"code" binding:"required,max=20"`
	Description string     `json:"description" binding:"max=500"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest is the request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// MoveCategoryRequest reparents a category. A nil parent moves it to the root.
type MoveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

// AttachIdentifierRequest attaches a required identifier type to a category
type AttachIdentifierRequest struct {
	IdentifierCode string `json:"identifier_code" binding:"required,max=20"`
}

// CategoryResponse is the response for category data
type CategoryResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    string     `json:"description,omitempty"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	FullPath       string     `json:"full_path"`
	HasChildren    bool       `json:"has_children"`
	IsDiscontinued bool       `json:"is_discontinued"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CategoryTreeNode is a category with its children, for tree listings
type CategoryTreeNode struct {
	CategoryResponse
	Children []CategoryTreeNode `json:"children"`
}

// IdentifierTypeResponse is the response for identifier type data
type IdentifierTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
}

// CreateProductRequest is the request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=1000"`
	Unit        string          `json:"unit" binding:"required,max=20"`
	Barcode     string          `json:"barcode" binding:"omitempty,max=14"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	TrackSerial bool            `json:"track_serial"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// UpdateProductRequest is the request to update a product
type UpdateProductRequest struct {
	Name      *string          `json:"name" binding:"omitempty,max=200"`
	Barcode   *string          `json:"barcode" binding:"omitempty,max=14"`
	VATRate   *decimal.Decimal `json:"vat_rate"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	SalePrice *decimal.Decimal `json:"sale_price"`
}

// ChangeProductCategoryRequest moves a product to another category
type ChangeProductCategoryRequest struct {
	CategoryID *uuid.UUID `json:"category_id"`
}

// RegisterSerialRequest registers a serial number for a tracked product
type RegisterSerialRequest struct {
	Serial    string `json:"serial" binding:"required,max=100"`
	SourceRef string `json:"source_ref" binding:"max=100"`
}

// ProductResponse is the response for product data
type ProductResponse struct {
	ID             uuid.UUID       `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	CategoryID     *uuid.UUID      `json:"category_id,omitempty"`
	Unit           string          `json:"unit"`
	TrackSerial    bool            `json:"track_serial"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	IsDiscontinued bool            `json:"is_discontinued"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductSerialResponse is the response for a registered serial
type ProductSerialResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Serial    string    `json:"serial"`
	SourceRef string    `json:"source_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListFilter carries product list query options
type ProductListFilter struct {
	Page         int        `form:"page"`
	PageSize     int        `form:"page_size"`
	Search       string     `form:"search"`
	CategoryID   *uuid.UUID `form:"category_id"`
	Discontinued *bool      `form:"discontinued"`
}

// ToCategoryResponse converts a category with tree context to a response
func ToCategoryResponse(c *catalog.Category, tree *catalog.Tree) CategoryResponse {
	resp := CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Code:           c.Code,
		Description:    c.Description,
		ParentID:       c.ParentID,
		IsDiscontinued: c.IsDiscontinued,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if tree != nil {
		resp.FullPath = tree.FullPath(c.ID)
		resp.HasChildren = tree.HasChildren(c.ID)
	}
	return resp
}

// ToIdentifierTypeResponse converts an identifier type to a response
func ToIdentifierTypeResponse(it *catalog.IdentifierType) IdentifierTypeResponse {
	return IdentifierTypeResponse{
		ID:          it.ID,
		Code:        it.Code,
		Description: it.Description,
	}
}

// ToProductResponse converts a product to a response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Barcode:        p.Barcode,
		CategoryID:     p.CategoryID,
		Unit:           p.Unit,
		TrackSerial:    p.TrackSerial,
		VATRate:        p.VATRate,
		CostPrice:      p.CostPrice,
		SalePrice:      p.SalePrice,
		IsDiscontinued: p.IsDiscontinued,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProductSerialResponse converts a registered serial to a response
func ToProductSerialResponse(s *catalog.ProductSerial) ProductSerialResponse {
	return ProductSerialResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Serial:    s.Serial,
		SourceRef: s.SourceRef,
		CreatedAt: s.CreatedAt,
	}
}
