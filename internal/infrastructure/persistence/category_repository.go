package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/catalog"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByIDForCompany finds a category by ID within a company
func (r *GormCategoryRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	var categories []catalog.Category
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Category{}), filter)

	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindAllForCompany finds all categories for a company
func (r *GormCategoryRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]catalog.Category, error) {
	var categories []catalog.Category
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Category{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindTreeForCompany loads every category of the company for tree traversal
func (r *GormCategoryRepository) FindTreeForCompany(ctx context.Context, companyID uuid.UUID) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// SaveAll creates or updates multiple categories in one transaction
func (r *GormCategoryRepository) SaveAll(ctx context.Context, categories []*catalog.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, category := range categories {
			if err := tx.Save(category).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Category{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNameForCompany checks if a category with the given name exists in the company
func (r *GormCategoryRepository) ExistsByNameForCompany(ctx context.Context, companyID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Category{}).
		Where("company_id = ? AND name = ?", companyID, strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindRequiredIdentifiers returns the identifier types required by the category
func (r *GormCategoryRepository) FindRequiredIdentifiers(ctx context.Context, categoryID uuid.UUID) ([]catalog.IdentifierType, error) {
	var types []catalog.IdentifierType
	if err := r.db.WithContext(ctx).
		Model(&catalog.IdentifierType{}).
		Joins("JOIN category_identifiers ON category_identifiers.identifier_type_id = identifier_types.id").
		Where("category_identifiers.category_id = ?", categoryID).
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// AttachIdentifier links an identifier type requirement to the category.
// Attaching an already attached identifier is a no-op.
func (r *GormCategoryRepository) AttachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error {
	link := catalog.CategoryIdentifier{
		CategoryID:       categoryID,
		IdentifierTypeID: identifierTypeID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

// DetachIdentifier removes an identifier type requirement from the category
func (r *GormCategoryRepository) DetachIdentifier(ctx context.Context, categoryID, identifierTypeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&catalog.CategoryIdentifier{}, "category_id = ? AND identifier_type_id = ?", categoryID, identifierTypeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCategoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, CategorySortFields)
}

func (r *GormCategoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "parent_id":
			query = query.Where("parent_id = ?", value)
		case "is_discontinued":
			query = query.Where("is_discontinued = ?", value)
		}
	}
	return query
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

// GormIdentifierTypeRepository implements IdentifierTypeRepository using GORM
type GormIdentifierTypeRepository struct {
	db *gorm.DB
}

// NewGormIdentifierTypeRepository creates a new GormIdentifierTypeRepository
func NewGormIdentifierTypeRepository(db *gorm.DB) *GormIdentifierTypeRepository {
	return &GormIdentifierTypeRepository{db: db}
}

// FindByCode finds an identifier type by its code
func (r *GormIdentifierTypeRepository) FindByCode(ctx context.Context, code string) (*catalog.IdentifierType, error) {
	var it catalog.IdentifierType
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

// FindAll returns all identifier types
func (r *GormIdentifierTypeRepository) FindAll(ctx context.Context) ([]catalog.IdentifierType, error) {
	var types []catalog.IdentifierType
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Save creates or updates an identifier type
func (r *GormIdentifierTypeRepository) Save(ctx context.Context, it *catalog.IdentifierType) error {
	return r.db.WithContext(ctx).Save(it).Error
}

// Ensure GormIdentifierTypeRepository implements IdentifierTypeRepository
var _ catalog.IdentifierTypeRepository = (*GormIdentifierTypeRepository)(nil)
