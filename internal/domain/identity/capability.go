package identity

import (
	"strings"

	"github.com/tradecore/backend/internal/domain/shared"
)

// Capability is a registered permission codename. The set of capabilities is
// closed: codenames are declared here and nowhere else, and a check against an
// unregistered codename is a programming error, not a silent deny.
type Capability string

// Identity and access
const (
	CapViewCompany Capability = "view_company"
	CapManageUsers Capability = "manage_users"
	CapManageRoles Capability = "manage_roles"
	CapViewAuditLog Capability = "view_auditlog"
)

// Catalog
const (
	CapViewProductCategory   Capability = "view_productcategory"
	CapAddProductCategory    Capability = "add_productcategory"
	CapChangeProductCategory Capability = "change_productcategory"
	CapViewProduct           Capability = "view_product"
	CapAddProduct            Capability = "add_product"
	CapChangeProduct         Capability = "change_product"
)

// Inventory
const (
	CapViewWarehouse    Capability = "view_warehouse"
	CapAddWarehouse     Capability = "add_warehouse"
	CapViewStockOnHand  Capability = "view_stock_on_hand"
	CapAddStockMovement Capability = "add_stockmovement"
	CapAddAdjustment    Capability = "add_inventoryadjustment"
)

// Procurement
const (
	CapViewSupplier        Capability = "view_supplier"
	CapAddSupplier         Capability = "add_supplier"
	CapChangeSupplier      Capability = "change_supplier"
	CapAddRequisition      Capability = "add_purchaserequisition"
	CapApproveRequisition  Capability = "approve_purchaserequisition"
	CapViewQuotation       Capability = "view_quotationrequest"
	CapSelectQuotationLine Capability = "select_quotationline"
	CapViewPurchaseOrder   Capability = "view_purchaseorder"
	CapAddPurchaseOrder    Capability = "add_purchaseorder"
	CapAddGoodsReceipt     Capability = "add_goodsreceipt"
	CapViewInvoice         Capability = "view_supplierinvoice"
	CapApproveInvoice      Capability = "approve_supplierinvoice"
	CapAddPayment          Capability = "add_payment"
	CapApprovePayment      Capability = "approve_payment"
)

// Ledger
const (
	CapViewLedger      Capability = "view_ledgerentry"
	CapPostLedgerEntry Capability = "post_ledgerentry"
)

var capabilityRegistry = map[Capability]struct{}{
	CapViewCompany:           {},
	CapManageUsers:           {},
	CapManageRoles:           {},
	CapViewAuditLog:          {},
	CapViewProductCategory:   {},
	CapAddProductCategory:    {},
	CapChangeProductCategory: {},
	CapViewProduct:           {},
	CapAddProduct:            {},
	CapChangeProduct:         {},
	CapViewWarehouse:         {},
	CapAddWarehouse:          {},
	CapViewStockOnHand:       {},
	CapAddStockMovement:      {},
	CapAddAdjustment:         {},
	CapViewSupplier:          {},
	CapAddSupplier:           {},
	CapChangeSupplier:        {},
	CapAddRequisition:        {},
	CapApproveRequisition:    {},
	CapViewQuotation:         {},
	CapSelectQuotationLine:   {},
	CapViewPurchaseOrder:     {},
	CapAddPurchaseOrder:      {},
	CapAddGoodsReceipt:       {},
	CapViewInvoice:           {},
	CapApproveInvoice:        {},
	CapAddPayment:            {},
	CapApprovePayment:        {},
	CapViewLedger:            {},
	CapPostLedgerEntry:       {},
}

// IsRegistered reports whether the capability is part of the closed registry
func (c Capability) IsRegistered() bool {
	_, ok := capabilityRegistry[c]
	return ok
}

// String returns the codename
func (c Capability) String() string {
	return string(c)
}

// ParseCapability converts a codename string into a registered Capability.
// Unknown codenames are rejected.
func ParseCapability(codename string) (Capability, error) {
	c := Capability(strings.TrimSpace(codename))
	if !c.IsRegistered() {
		return "", shared.NewDomainError("UNKNOWN_CAPABILITY", "Unknown permission codename: "+codename)
	}
	return c, nil
}

// AllCapabilities returns every registered capability, for seeding and
// administration listings.
func AllCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilityRegistry))
	for c := range capabilityRegistry {
		caps = append(caps, c)
	}
	return caps
}
