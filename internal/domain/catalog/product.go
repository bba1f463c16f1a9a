package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradecore/backend/internal/domain/shared"
)

// GenericCategoryCode is used in SKUs for products without a category
const GenericCategoryCode = "GEN"

var barcodePattern = regexp.MustCompile(`^\d{8,14}$`)

// Product is a sellable or purchasable item in the catalog
type Product struct {
	shared.CompanyAggregateRoot
	SKU            string
	Name           string
	Description    string
	Barcode        string
	CategoryID     *uuid.UUID
	Unit           string
	TrackSerial    bool
	VATRate        decimal.Decimal
	CostPrice      decimal.Decimal
	SalePrice      decimal.Decimal
	IsDiscontinued bool
}

// TableName returns the database table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product. The SKU is assigned by the application
// service via BuildSKU before the product is persisted.
func NewProduct(companyID uuid.UUID, name, unit string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	product := &Product{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Name:                 strings.TrimSpace(name),
		Unit:                 strings.TrimSpace(unit),
		VATRate:              decimal.Zero,
		CostPrice:            decimal.Zero,
		SalePrice:            decimal.Zero,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// BuildSKU composes the canonical SKU: the company code, the category code
// (or GEN when uncategorized), and a zero-padded per-scope sequence.
func BuildSKU(companyCode, categoryCode string, sequence int) string {
	if categoryCode == "" {
		categoryCode = GenericCategoryCode
	}
	return fmt.Sprintf("%s-%s-%06d", companyCode, categoryCode, sequence)
}

// AssignSKU sets the SKU once; reassignment is rejected
func (p *Product) AssignSKU(sku string) error {
	if p.SKU != "" {
		return shared.ErrInvalidState
	}
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	p.SKU = sku
	return nil
}

// SetBarcode sets the product barcode
func (p *Product) SetBarcode(barcode string) error {
	barcode = strings.TrimSpace(barcode)
	if barcode != "" && !barcodePattern.MatchString(barcode) {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode must be 8-14 digits")
	}
	p.Barcode = barcode
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetCategory assigns the product to a category. Only leaf categories may
// carry products; the application service enforces that with tree knowledge.
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetPricing updates cost and sale prices
func (p *Product) SetPricing(costPrice, salePrice decimal.Decimal) error {
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetVATRate updates the VAT percentage
func (p *Product) SetVATRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_VAT_RATE", "VAT rate must be between 0 and 100")
	}
	p.VATRate = rate
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// EnableSerialTracking turns on per-unit serial tracking
func (p *Product) EnableSerialTracking() {
	p.TrackSerial = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Rename changes the product name
func (p *Product) Rename(name string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Discontinue marks the product as discontinued. Idempotent.
func (p *Product) Discontinue() {
	if p.IsDiscontinued {
		return
	}
	p.IsDiscontinued = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProductDiscontinuedEvent(p))
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
