package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// ProductSerial records a single tracked unit of a serialized product.
// The (product, serial) pair is unique.
type ProductSerial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_serial"`
	Serial    string    `gorm:"size:100;not null;uniqueIndex:idx_product_serial"`
	SourceRef string    `gorm:"size:100"`
	CreatedAt time.Time
}

// TableName returns the database table name
func (ProductSerial) TableName() string {
	return "product_serials"
}

// NewProductSerial registers a serial for a product unit
func NewProductSerial(companyID, productID uuid.UUID, serial, sourceRef string) (*ProductSerial, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot be empty")
	}
	if len(serial) > 100 {
		return nil, shared.NewDomainError("INVALID_SERIAL", "Serial number cannot exceed 100 characters")
	}

	return &ProductSerial{
		ID:        uuid.New(),
		CompanyID: companyID,
		ProductID: productID,
		Serial:    serial,
		SourceRef: sourceRef,
		CreatedAt: time.Now(),
	}, nil
}
