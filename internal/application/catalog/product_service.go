package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	serialRepo   catalog.ProductSerialRepository
	companyRepo  identity.CompanyRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	serialRepo catalog.ProductSerialRepository,
	companyRepo identity.CompanyRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		serialRepo:   serialRepo,
		companyRepo:  companyRepo,
		logger:       logger,
	}
}

// Create creates a product with a generated SKU
func (s *ProductService) Create(ctx context.Context, companyID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	categoryCode := ""
	if req.CategoryID != nil {
		category, err := s.leafCategory(ctx, companyID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryCode = category.Code
	}

	product, err := catalog.NewProduct(companyID, req.Name, req.Unit)
	if err != nil {
		return nil, err
	}
	product.Description = strings.TrimSpace(req.Description)
	product.SetCategory(req.CategoryID)

	if req.Barcode != "" {
		if err := product.SetBarcode(req.Barcode); err != nil {
			return nil, err
		}
	}
	if err := product.SetPricing(req.CostPrice, req.SalePrice); err != nil {
		return nil, err
	}
	if err := product.SetVATRate(req.VATRate); err != nil {
		return nil, err
	}
	if req.TrackSerial {
		product.EnableSerialTracking()
	}

	sequence, err := s.productRepo.NextSKUSequence(ctx, companyID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := product.AssignSKU(catalog.BuildSKU(company.Code, categoryCode, sequence)); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU))

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetBySKU retrieves a product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, companyID uuid.UUID, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, companyID, sku)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, companyID uuid.UUID, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Discontinued != nil {
		domainFilter.Filters["is_discontinued"] = *filter.Discontinued
	}

	products, err := s.productRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// Update changes mutable product fields
func (s *ProductService) Update(ctx context.Context, companyID, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Barcode != nil {
		if err := product.SetBarcode(*req.Barcode); err != nil {
			return nil, err
		}
	}
	if req.CostPrice != nil || req.SalePrice != nil {
		cost, sale := product.CostPrice, product.SalePrice
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if err := product.SetPricing(cost, sale); err != nil {
			return nil, err
		}
	}
	if req.VATRate != nil {
		if err := product.SetVATRate(*req.VATRate); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// ChangeCategory moves the product to another category. The SKU keeps the
// code it was minted with.
func (s *ProductService) ChangeCategory(ctx context.Context, companyID, id uuid.UUID, req ChangeProductCategoryRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.leafCategory(ctx, companyID, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	product.SetCategory(req.CategoryID)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Discontinue marks a product as discontinued
func (s *ProductService) Discontinue(ctx context.Context, companyID, id uuid.UUID) error {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return err
	}
	product.Discontinue()
	return s.productRepo.Save(ctx, product)
}

// RegisterSerial registers a serial number for a serial-tracked product
func (s *ProductService) RegisterSerial(ctx context.Context, companyID, productID uuid.UUID, req RegisterSerialRequest) (*ProductSerialResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	if !product.TrackSerial {
		return nil, shared.NewDomainError("SERIAL_NOT_TRACKED", "Product does not track serial numbers")
	}

	exists, err := s.serialRepo.Exists(ctx, productID, req.Serial)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SERIAL", "Serial number already registered for this product")
	}

	serial, err := catalog.NewProductSerial(companyID, productID, req.Serial, req.SourceRef)
	if err != nil {
		return nil, err
	}
	if err := s.serialRepo.Save(ctx, serial); err != nil {
		return nil, err
	}

	resp := ToProductSerialResponse(serial)
	return &resp, nil
}

// ListSerials lists the serials registered for a product
func (s *ProductService) ListSerials(ctx context.Context, companyID, productID uuid.UUID) ([]ProductSerialResponse, error) {
	if _, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID); err != nil {
		return nil, err
	}

	serials, err := s.serialRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductSerialResponse, 0, len(serials))
	for i := range serials {
		responses = append(responses, ToProductSerialResponse(&serials[i]))
	}
	return responses, nil
}

// leafCategory loads the category and rejects non-leaf assignment
func (s *ProductService) leafCategory(ctx context.Context, companyID, categoryID uuid.UUID) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindTreeForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if catalog.NewTree(categories).HasChildren(categoryID) {
		return nil, shared.NewDomainError("CATEGORY_NOT_LEAF", "Products can only be assigned to leaf categories")
	}

	return category, nil
}
