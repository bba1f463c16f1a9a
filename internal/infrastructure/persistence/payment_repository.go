package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Payment, error) {
	var payment procurement.Payment
	if err := r.db.WithContext(ctx).
		Preload("Approvals").
		First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByIDForCompany finds a payment by ID within a company
func (r *GormPaymentRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Payment, error) {
	var payment procurement.Payment
	if err := r.db.WithContext(ctx).
		Preload("Approvals").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByPurchaseOrder finds all payments against a purchase order
func (r *GormPaymentRepository) FindByPurchaseOrder(ctx context.Context, companyID, poID uuid.UUID) ([]procurement.Payment, error) {
	var payments []procurement.Payment
	if err := r.db.WithContext(ctx).
		Preload("Approvals").
		Where("company_id = ? AND purchase_order_id = ?", companyID, poID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// HasApprovedAdvance reports whether an approved advance payment exists for
// the purchase order
func (r *GormPaymentRepository) HasApprovedAdvance(ctx context.Context, companyID, poID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&procurement.Payment{}).
		Where("company_id = ? AND purchase_order_id = ? AND is_advance = ? AND status = ?",
			companyID, poID, true, procurement.PaymentApproved).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all payments matching the filter
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Payment, error) {
	var payments []procurement.Payment
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Payment{}), filter)

	if err := query.Preload("Approvals").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAllForCompany finds all payments for a company
func (r *GormPaymentRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Payment, error) {
	var payments []procurement.Payment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&procurement.Payment{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Preload("Approvals").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Save creates or updates a payment along with its approval rows
func (r *GormPaymentRepository) Save(ctx context.Context, payment *procurement.Payment) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(payment).Error
}

// Delete deletes a payment and its approval rows
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", id).Delete(&procurement.PaymentApproval{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&procurement.Payment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.Payment{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, PaymentSortFields)
}

func (r *GormPaymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "method":
			query = query.Where("method = ?", value)
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "is_advance":
			query = query.Where("is_advance = ?", value)
		}
	}
	return query
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ procurement.PaymentRepository = (*GormPaymentRepository)(nil)
