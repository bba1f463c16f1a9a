package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/inventory"
	"github.com/tradecore/backend/internal/domain/ledger"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
)

// MockSupplierRepository is a mock implementation of SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *procurement.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Supplier, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Supplier, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (*procurement.Supplier, error) {
	args := m.Called(ctx, companyID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, companyID, email)
	return args.Bool(0), args.Error(1)
}

// MockSupplierOTPRepository is a mock implementation of SupplierOTPRepository
type MockSupplierOTPRepository struct {
	mock.Mock
}

func (m *MockSupplierOTPRepository) Save(ctx context.Context, otp *procurement.SupplierOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockSupplierOTPRepository) FindLatestForSupplier(ctx context.Context, companyID, supplierID uuid.UUID) (*procurement.SupplierOTP, error) {
	args := m.Called(ctx, companyID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.SupplierOTP), args.Error(1)
}

// MockRequisitionRepository is a mock implementation of RequisitionRepository
type MockRequisitionRepository struct {
	mock.Mock
}

func (m *MockRequisitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Requisition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Requisition, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) Save(ctx context.Context, requisition *procurement.Requisition) error {
	args := m.Called(ctx, requisition)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRequisitionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequisitionRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Requisition, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Requisition), args.Error(1)
}

func (m *MockRequisitionRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Requisition, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.Requisition), args.Error(1)
}

// MockQuotationRepository is a mock implementation of QuotationRepository
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.QuotationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.QuotationRequest), args.Error(1)
}

func (m *MockQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.QuotationRequest, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.QuotationRequest), args.Error(1)
}

func (m *MockQuotationRepository) Save(ctx context.Context, quotation *procurement.QuotationRequest) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuotationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.QuotationRequest, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.QuotationRequest), args.Error(1)
}

func (m *MockQuotationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.QuotationRequest, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.QuotationRequest), args.Error(1)
}

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, po *procurement.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumberForCompany(ctx context.Context, companyID uuid.UUID, orderNumber string) (*procurement.PurchaseOrder, error) {
	args := m.Called(ctx, companyID, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) NextOrderSequence(ctx context.Context, companyID uuid.UUID) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

// MockGoodsReceiptRepository is a mock implementation of GoodsReceiptRepository
type MockGoodsReceiptRepository struct {
	mock.Mock
}

func (m *MockGoodsReceiptRepository) Save(ctx context.Context, receipt *procurement.GoodsReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockGoodsReceiptRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.GoodsReceipt, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.GoodsReceipt), args.Error(1)
}

func (m *MockGoodsReceiptRepository) FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]procurement.GoodsReceipt, error) {
	args := m.Called(ctx, companyID, poID)
	return args.Get(0).([]procurement.GoodsReceipt), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *procurement.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Invoice, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Invoice, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]procurement.Invoice, error) {
	args := m.Called(ctx, companyID, poID)
	return args.Get(0).([]procurement.Invoice), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]procurement.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *procurement.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Payment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Payment, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]procurement.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]procurement.Payment, error) {
	args := m.Called(ctx, companyID, poID)
	return args.Get(0).([]procurement.Payment), args.Error(1)
}

func (m *MockPaymentRepository) HasApprovedAdvance(ctx context.Context, companyID, poID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, poID)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of the catalog ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, companyID uuid.UUID, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, companyID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, companyID, categoryID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, companyID, categoryID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) NextSKUSequence(ctx context.Context, companyID uuid.UUID, categoryID *uuid.UUID) (int, error) {
	args := m.Called(ctx, companyID, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) SaveAll(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of the catalog CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindTreeForCompany(ctx context.Context, companyID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByNameForCompany(ctx context.Context, companyID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, companyID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) FindRequiredIdentifiers(ctx context.Context, categoryID uuid.UUID) ([]catalog.IdentifierType, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]catalog.IdentifierType), args.Error(1)
}

func (m *MockCategoryRepository) AttachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error {
	args := m.Called(ctx, categoryID, identifierTypeID)
	return args.Error(0)
}

func (m *MockCategoryRepository) DetachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error {
	args := m.Called(ctx, categoryID, identifierTypeID)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveAll(ctx context.Context, categories []*catalog.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

// MockProductSerialRepository is a mock implementation of ProductSerialRepository
type MockProductSerialRepository struct {
	mock.Mock
}

func (m *MockProductSerialRepository) Save(ctx context.Context, serial *catalog.ProductSerial) error {
	args := m.Called(ctx, serial)
	return args.Error(0)
}

func (m *MockProductSerialRepository) Exists(ctx context.Context, productID uuid.UUID, serial string) (bool, error) {
	args := m.Called(ctx, productID, serial)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductSerialRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.ProductSerial, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductSerial), args.Error(1)
}

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *inventory.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*inventory.Warehouse, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, companyID, code)
	return args.Bool(0), args.Error(1)
}

// MockStockLotRepository is a mock implementation of StockLotRepository
type MockStockLotRepository struct {
	mock.Mock
}

func (m *MockStockLotRepository) Save(ctx context.Context, lot *inventory.StockLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockStockLotRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.StockLot, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLot), args.Error(1)
}

func (m *MockStockLotRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockLot, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).([]inventory.StockLot), args.Error(1)
}

func (m *MockStockLotRepository) FindExpiring(ctx context.Context, companyID uuid.UUID, withinDays int) ([]inventory.StockLot, error) {
	args := m.Called(ctx, companyID, withinDays)
	return args.Get(0).([]inventory.StockLot), args.Error(1)
}

// MockStockMovementRepository is a mock implementation of StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByProduct(ctx context.Context, companyID, productID uuid.UUID) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, companyID, productID)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[inventory.StockMovement], error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(shared.Paginated[inventory.StockMovement]), args.Error(1)
}

// MockAccountRepository is a mock implementation of the ledger AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*ledger.Account, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID) ([]ledger.Account, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockEntryRepository is a mock implementation of the ledger EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (shared.Paginated[ledger.Entry], error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(shared.Paginated[ledger.Entry]), args.Error(1)
}

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorageService) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

// MockVerificationThrottle is a mock implementation of VerificationThrottle
type MockVerificationThrottle struct {
	mock.Mock
}

func (m *MockVerificationThrottle) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationThrottle) RecordFailure(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockVerificationThrottle) Reset(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ procurement.SupplierRepository = (*MockSupplierRepository)(nil)
var _ procurement.SupplierOTPRepository = (*MockSupplierOTPRepository)(nil)
var _ procurement.RequisitionRepository = (*MockRequisitionRepository)(nil)
var _ procurement.QuotationRepository = (*MockQuotationRepository)(nil)
var _ procurement.PurchaseOrderRepository = (*MockPurchaseOrderRepository)(nil)
var _ procurement.GoodsReceiptRepository = (*MockGoodsReceiptRepository)(nil)
var _ procurement.InvoiceRepository = (*MockInvoiceRepository)(nil)
var _ procurement.PaymentRepository = (*MockPaymentRepository)(nil)
var _ catalog.ProductRepository = (*MockProductRepository)(nil)
var _ catalog.CategoryRepository = (*MockCategoryRepository)(nil)
var _ catalog.ProductSerialRepository = (*MockProductSerialRepository)(nil)
var _ inventory.WarehouseRepository = (*MockWarehouseRepository)(nil)
var _ inventory.StockLotRepository = (*MockStockLotRepository)(nil)
var _ inventory.StockMovementRepository = (*MockStockMovementRepository)(nil)
var _ ledger.AccountRepository = (*MockAccountRepository)(nil)
var _ ledger.EntryRepository = (*MockEntryRepository)(nil)
var _ ObjectStorageService = (*MockObjectStorageService)(nil)
var _ VerificationThrottle = (*MockVerificationThrottle)(nil)
