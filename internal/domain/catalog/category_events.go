package catalog

import (
	"github.com/tradecore/backend/internal/domain/shared"
)

// Event types for the catalog context
const (
	EventCategoryCreated      = "catalog.category.created"
	EventCategoryMoved        = "catalog.category.moved"
	EventCategoryDiscontinued = "catalog.category.discontinued"
	EventProductCreated       = "catalog.product.created"
	EventProductDiscontinued  = "catalog.product.discontinued"
)

// CategoryCreatedEvent is emitted when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewCategoryCreatedEvent creates a category created event
func NewCategoryCreatedEvent(c *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCategoryCreated, "Category", c.ID, c.CompanyID),
		Name:            c.Name,
		Code:            c.Code,
	}
}

// CategoryMovedEvent is emitted when a category is reparented
type CategoryMovedEvent struct {
	shared.BaseDomainEvent
	ParentID string `json:"parent_id,omitempty"`
}

// NewCategoryMovedEvent creates a category moved event
func NewCategoryMovedEvent(c *Category) *CategoryMovedEvent {
	e := &CategoryMovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCategoryMoved, "Category", c.ID, c.CompanyID),
	}
	if c.ParentID != nil {
		e.ParentID = c.ParentID.String()
	}
	return e
}

// CategoryDiscontinuedEvent is emitted when a category is discontinued
type CategoryDiscontinuedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryDiscontinuedEvent creates a category discontinued event
func NewCategoryDiscontinuedEvent(c *Category) *CategoryDiscontinuedEvent {
	return &CategoryDiscontinuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCategoryDiscontinued, "Category", c.ID, c.CompanyID),
		Name:            c.Name,
	}
}

// ProductCreatedEvent is emitted when a product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// NewProductCreatedEvent creates a product created event
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductCreated, "Product", p.ID, p.CompanyID),
		Name:            p.Name,
		SKU:             p.SKU,
	}
}

// ProductDiscontinuedEvent is emitted when a product is discontinued
type ProductDiscontinuedEvent struct {
	shared.BaseDomainEvent
	SKU string `json:"sku"`
}

// NewProductDiscontinuedEvent creates a product discontinued event
func NewProductDiscontinuedEvent(p *Product) *ProductDiscontinuedEvent {
	return &ProductDiscontinuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductDiscontinued, "Product", p.ID, p.CompanyID),
		SKU:             p.SKU,
	}
}
