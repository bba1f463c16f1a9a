package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Warehouse is a physical stock location belonging to a company
type Warehouse struct {
	shared.CompanyAggregateRoot
	Name     string
	Code     string
	Location string
	IsActive bool
}

// TableName returns the database table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a warehouse
func NewWarehouse(companyID uuid.UUID, name, code, location string) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE_NAME", "Warehouse name cannot be empty")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE_CODE", "Warehouse code must be 1-20 characters")
	}

	return &Warehouse{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 name,
		Code:                 code,
		Location:             strings.TrimSpace(location),
		IsActive:             true,
	}, nil
}

// Rename changes the warehouse name
func (w *Warehouse) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_WAREHOUSE_NAME", "Warehouse name cannot be empty")
	}
	w.Name = name
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// Deactivate takes the warehouse out of service
func (w *Warehouse) Deactivate() {
	w.IsActive = false
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}
