package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormQuotationRepository implements QuotationRepository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// FindByID finds a quotation request by its ID
func (r *GormQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.QuotationRequest, error) {
	var quotation procurement.QuotationRequest
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&quotation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// FindByIDForCompany finds a quotation request by ID within a company
func (r *GormQuotationRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.QuotationRequest, error) {
	var quotation procurement.QuotationRequest
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&quotation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// FindAll finds all quotation requests matching the filter
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.QuotationRequest, error) {
	var quotations []procurement.QuotationRequest
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.QuotationRequest{}), filter)

	if err := query.Preload("Lines").Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// FindAllForCompany finds all quotation requests for a company
func (r *GormQuotationRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.QuotationRequest, error) {
	var quotations []procurement.QuotationRequest
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&procurement.QuotationRequest{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Preload("Lines").Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// Save creates or updates a quotation request together with its lines
func (r *GormQuotationRepository) Save(ctx context.Context, quotation *procurement.QuotationRequest) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(quotation).Error
}

// Delete deletes a quotation request and its lines
func (r *GormQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&procurement.QuotationLine{}, "quotation_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&procurement.QuotationRequest{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts quotation requests matching the filter
func (r *GormQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.QuotationRequest{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormQuotationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, QuotationSortFields)
}

func (r *GormQuotationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("reference ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "requisition_id":
			query = query.Where("requisition_id = ?", value)
		}
	}
	return query
}

// Ensure GormQuotationRepository implements QuotationRepository
var _ procurement.QuotationRepository = (*GormQuotationRepository)(nil)
