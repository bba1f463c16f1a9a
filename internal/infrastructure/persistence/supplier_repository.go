package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/procurement"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Supplier, error) {
	var supplier procurement.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByIDForCompany finds a supplier by ID within a company
func (r *GormSupplierRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*procurement.Supplier, error) {
	var supplier procurement.Supplier
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByEmailForCompany finds a supplier by email within a company
func (r *GormSupplierRepository) FindByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (*procurement.Supplier, error) {
	var supplier procurement.Supplier
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND email = ?", companyID, strings.ToLower(strings.TrimSpace(email))).
		First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Supplier, error) {
	var suppliers []procurement.Supplier
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Supplier{}), filter)

	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// FindAllForCompany finds all suppliers for a company
func (r *GormSupplierRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]procurement.Supplier, error) {
	var suppliers []procurement.Supplier
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&procurement.Supplier{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *procurement.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete deletes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&procurement.Supplier{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByEmailForCompany checks if a supplier with the given email exists in the company
func (r *GormSupplierRepository) ExistsByEmailForCompany(ctx context.Context, companyID uuid.UUID, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&procurement.Supplier{}).
		Where("company_id = ? AND email = ?", companyID, strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSupplierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, SupplierSortFields)
}

func (r *GormSupplierRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_connected":
			query = query.Where("is_connected = ?", value)
		}
	}
	return query
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ procurement.SupplierRepository = (*GormSupplierRepository)(nil)

// GormSupplierOTPRepository implements SupplierOTPRepository using GORM
type GormSupplierOTPRepository struct {
	db *gorm.DB
}

// NewGormSupplierOTPRepository creates a new GormSupplierOTPRepository
func NewGormSupplierOTPRepository(db *gorm.DB) *GormSupplierOTPRepository {
	return &GormSupplierOTPRepository{db: db}
}

// Save creates or updates an OTP record
func (r *GormSupplierOTPRepository) Save(ctx context.Context, otp *procurement.SupplierOTP) error {
	return r.db.WithContext(ctx).Save(otp).Error
}

// FindLatestForSupplier finds the most recently issued OTP for the supplier
func (r *GormSupplierOTPRepository) FindLatestForSupplier(ctx context.Context, companyID, supplierID uuid.UUID) (*procurement.SupplierOTP, error) {
	var otp procurement.SupplierOTP
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND supplier_id = ?", companyID, supplierID).
		Order("created_at DESC").
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// Ensure GormSupplierOTPRepository implements SupplierOTPRepository
var _ procurement.SupplierOTPRepository = (*GormSupplierOTPRepository)(nil)
