package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// MaxCategoryDepth limits how deep the category tree can grow
const MaxCategoryDepth = 5

// Category is a node in the per-company category tree. The hierarchy is a
// plain parent pointer; traversal goes through Tree, which indexes a loaded
// set of nodes.
type Category struct {
	shared.CompanyAggregateRoot
	Name           string
	Code           string
	Description    string
	ParentID       *uuid.UUID
	IsDiscontinued bool
}

// TableName returns the database table name
func (Category) TableName() string {
	return "product_categories"
}

// NewCategory creates a root category
func NewCategory(companyID uuid.UUID, name, code string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateCategoryCode(code); err != nil {
		return nil, err
	}

	category := &Category{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 strings.TrimSpace(name),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// NewChildCategory creates a category under the given parent
func NewChildCategory(companyID uuid.UUID, name, code string, parentID uuid.UUID) (*Category, error) {
	category, err := NewCategory(companyID, name, code)
	if err != nil {
		return nil, err
	}
	category.ParentID = &parentID
	return category, nil
}

// Rename changes the category name. Uniqueness within the company is checked
// by the application service.
func (c *Category) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDescription updates the description
func (c *Category) SetDescription(description string) {
	c.Description = strings.TrimSpace(description)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// MoveTo reparents the category. Cycle and depth validation happens in Tree,
// which can see the rest of the hierarchy.
func (c *Category) MoveTo(parentID *uuid.UUID) {
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewCategoryMovedEvent(c))
}

// Discontinue marks the category as discontinued. Idempotent.
func (c *Category) Discontinue() {
	if c.IsDiscontinued {
		return
	}
	c.IsDiscontinued = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewCategoryDiscontinuedEvent(c))
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}

func validateCategoryCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CATEGORY_CODE", "Category code cannot be empty")
	}
	if len(code) > 20 {
		return shared.NewDomainError("INVALID_CATEGORY_CODE", "Category code cannot exceed 20 characters")
	}
	return nil
}
