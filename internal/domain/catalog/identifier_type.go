package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Well-known identifier type codes
const (
	IdentifierEAN13  = "EAN13"
	IdentifierSerial = "SER"
)

// IdentifierType is a kind of product identifier a category can require at
// goods receipt, e.g. EAN-13 barcodes or per-unit serial numbers.
type IdentifierType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"size:20;uniqueIndex;not null"`
	Description string    `gorm:"size:200"`
	CreatedAt   time.Time
}

// TableName returns the database table name
func (IdentifierType) TableName() string {
	return "identifier_types"
}

// NewIdentifierType creates an identifier type
func NewIdentifierType(code, description string) (*IdentifierType, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_IDENTIFIER_CODE", "Identifier code must be 1-20 characters")
	}
	return &IdentifierType{
		ID:          uuid.New(),
		Code:        code,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}, nil
}

// CategoryIdentifier links a category to an identifier type it requires
type CategoryIdentifier struct {
	CategoryID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentifierTypeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt        time.Time
}

// TableName returns the database table name
func (CategoryIdentifier) TableName() string {
	return "category_identifiers"
}
