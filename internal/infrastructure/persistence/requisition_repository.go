package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRequisitionRepository implements RequisitionRepository using GORM
type GormRequisitionRepository struct {
	db *gorm.DB
}

// NewGormRequisitionRepository creates a new GormRequisitionRepository
func NewGormRequisitionRepository(db *gorm.DB) *GormRequisitionRepository {
	return &GormRequisitionRepository{db: db}
}

// FindByID finds a requisition by its ID
func (r *GormRequisitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Requisition, error) {
	var requisition procurement.Requisition
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Approvals").
		First(&requisition, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &requisition, nil
}

// FindByIDForCompany finds a requisition by ID within a company
func (r *GormRequisitionRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Requisition, error) {
	var requisition procurement.Requisition
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Approvals").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&requisition).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &requisition, nil
}

// FindAll finds all requisitions matching the filter
func (r *GormRequisitionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Requisition, error) {
	var requisitions []procurement.Requisition
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Requisition{}), filter)

	if err := query.Preload("Items").Preload("Approvals").Find(&requisitions).Error; err != nil {
		return nil, err
	}
	return requisitions, nil
}

// FindAllForCompany finds all requisitions for a company
func (r *GormRequisitionRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Requisition, error) {
	var requisitions []procurement.Requisition
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&procurement.Requisition{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Preload("Items").Preload("Approvals").Find(&requisitions).Error; err != nil {
		return nil, err
	}
	return requisitions, nil
}

// Save creates or updates a requisition together with its items and approvals
func (r *GormRequisitionRepository) Save(ctx context.Context, requisition *procurement.Requisition) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(requisition).Error
}

// Delete deletes a requisition and its child rows
func (r *GormRequisitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&procurement.RequisitionItem{}, "requisition_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&procurement.RequisitionApproval{}, "requisition_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&procurement.Requisition{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts requisitions matching the filter
func (r *GormRequisitionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.Requisition{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRequisitionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, RequisitionSortFields)
}

func (r *GormRequisitionRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "requested_by":
			query = query.Where("requested_by = ?", value)
		}
	}
	return query
}

// Ensure GormRequisitionRepository implements RequisitionRepository
var _ procurement.RequisitionRepository = (*GormRequisitionRepository)(nil)
