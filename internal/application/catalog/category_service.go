package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category hierarchy operations
type CategoryService struct {
	categoryRepo   catalog.CategoryRepository
	productRepo    catalog.ProductRepository
	identifierRepo catalog.IdentifierTypeRepository
	logger         *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	identifierRepo catalog.IdentifierTypeRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		identifierRepo: identifierRepo,
		logger:         logger,
	}
}

// Create creates a category, optionally under a parent
func (s *CategoryService) Create(ctx context.Context, companyID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	taken, err := s.categoryRepo.ExistsByNameForCompany(ctx, companyID, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	var category *catalog.Category
	if req.ParentID == nil {
		category, err = catalog.NewCategory(companyID, req.Name, req.Code)
	} else {
		tree, treeErr := s.loadTree(ctx, companyID)
		if treeErr != nil {
			return nil, treeErr
		}
		parent, ok := tree.Get(*req.ParentID)
		if !ok {
			return nil, shared.ErrNotFound
		}
		if tree.Depth(parent.ID)+1 > catalog.MaxCategoryDepth {
			return nil, shared.NewDomainError("MAX_DEPTH_EXCEEDED", "Category tree depth limit exceeded")
		}
		category, err = catalog.NewChildCategory(companyID, req.Name, req.Code, parent.ID)
	}
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		category.SetDescription(req.Description)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name))

	resp := ToCategoryResponse(category, nil)
	return &resp, nil
}

// GetByID retrieves a category with its tree context
func (s *CategoryService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	tree, err := s.loadTree(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category, tree)
	return &resp, nil
}

// Update renames a category and updates its description
func (s *CategoryService) Update(ctx context.Context, companyID, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		taken, err := s.categoryRepo.ExistsByNameForCompany(ctx, companyID, *req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		}
		if err := category.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		category.SetDescription(*req.Description)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category, nil)
	return &resp, nil
}

// Move reparents a category after validating the move against the whole tree
func (s *CategoryService) Move(ctx context.Context, companyID, id uuid.UUID, req MoveCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	tree, err := s.loadTree(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := tree.ValidateMove(id, req.ParentID); err != nil {
		return nil, err
	}

	category.MoveTo(req.ParentID)
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category moved",
		zap.String("category_id", id.String()),
		zap.Any("parent_id", req.ParentID))

	resp := ToCategoryResponse(category, nil)
	return &resp, nil
}

// Discontinue marks the category, its whole subtree and every product in it as
// discontinued.
func (s *CategoryService) Discontinue(ctx context.Context, companyID, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return err
	}

	tree, err := s.loadTree(ctx, companyID)
	if err != nil {
		return err
	}

	affected := []*catalog.Category{category}
	affected = append(affected, tree.Descendants(id)...)

	var products []*catalog.Product
	for _, c := range affected {
		c.Discontinue()

		inCategory, err := s.productRepo.FindByCategory(ctx, companyID, c.ID)
		if err != nil {
			return err
		}
		for i := range inCategory {
			inCategory[i].Discontinue()
			products = append(products, &inCategory[i])
		}
	}

	if err := s.categoryRepo.SaveAll(ctx, affected); err != nil {
		return err
	}
	if len(products) > 0 {
		if err := s.productRepo.SaveAll(ctx, products); err != nil {
			return err
		}
	}

	s.logger.Info("Category discontinued",
		zap.String("category_id", id.String()),
		zap.Int("categories", len(affected)),
		zap.Int("products", len(products)))

	return nil
}

// Tree returns the company's full category hierarchy
func (s *CategoryService) Tree(ctx context.Context, companyID uuid.UUID) ([]CategoryTreeNode, error) {
	tree, err := s.loadTree(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return s.buildNodes(tree, tree.Roots()), nil
}

func (s *CategoryService) buildNodes(tree *catalog.Tree, categories []*catalog.Category) []CategoryTreeNode {
	nodes := make([]CategoryTreeNode, 0, len(categories))
	for _, c := range categories {
		nodes = append(nodes, CategoryTreeNode{
			CategoryResponse: ToCategoryResponse(c, tree),
			Children:         s.buildNodes(tree, tree.Children(c.ID)),
		})
	}
	return nodes
}

// AttachIdentifier requires an identifier type for the category
func (s *CategoryService) AttachIdentifier(ctx context.Context, companyID, categoryID uuid.UUID, req AttachIdentifierRequest) error {
	if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID); err != nil {
		return err
	}

	identifierType, err := s.identifierRepo.FindByCode(ctx, req.IdentifierCode)
	if err != nil {
		return err
	}

	return s.categoryRepo.AttachIdentifier(ctx, categoryID, identifierType.ID)
}

// DetachIdentifier removes a required identifier type from the category
func (s *CategoryService) DetachIdentifier(ctx context.Context, companyID, categoryID uuid.UUID, identifierCode string) error {
	if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID); err != nil {
		return err
	}

	identifierType, err := s.identifierRepo.FindByCode(ctx, identifierCode)
	if err != nil {
		return err
	}

	return s.categoryRepo.DetachIdentifier(ctx, categoryID, identifierType.ID)
}

// RequiredIdentifiers lists the identifier types the category requires
func (s *CategoryService) RequiredIdentifiers(ctx context.Context, companyID, categoryID uuid.UUID) ([]IdentifierTypeResponse, error) {
	if _, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID); err != nil {
		return nil, err
	}

	types, err := s.categoryRepo.FindRequiredIdentifiers(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]IdentifierTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, ToIdentifierTypeResponse(&types[i]))
	}
	return responses, nil
}

// ListIdentifierTypes lists every identifier type known to the platform
func (s *CategoryService) ListIdentifierTypes(ctx context.Context) ([]IdentifierTypeResponse, error) {
	types, err := s.identifierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]IdentifierTypeResponse, 0, len(types))
	for i := range types {
		responses = append(responses, ToIdentifierTypeResponse(&types[i]))
	}
	return responses, nil
}

func (s *CategoryService) loadTree(ctx context.Context, companyID uuid.UUID) (*catalog.Tree, error) {
	categories, err := s.categoryRepo.FindTreeForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return catalog.NewTree(categories), nil
}
