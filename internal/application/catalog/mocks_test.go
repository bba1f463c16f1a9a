package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
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

// MockProductRepository is a mock implementation of ProductRepository
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

// MockIdentifierTypeRepository is a mock implementation of IdentifierTypeRepository
type MockIdentifierTypeRepository struct {
	mock.Mock
}

func (m *MockIdentifierTypeRepository) FindByCode(ctx context.Context, code string) (*catalog.IdentifierType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.IdentifierType), args.Error(1)
}

func (m *MockIdentifierTypeRepository) FindAll(ctx context.Context) ([]catalog.IdentifierType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.IdentifierType), args.Error(1)
}

func (m *MockIdentifierTypeRepository) Save(ctx context.Context, it *catalog.IdentifierType) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

// MockCompanyRepository is a mock implementation of identity.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, code string) (*identity.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
