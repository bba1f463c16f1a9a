package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRoleRepository implements RoleRepository using GORM.
// Capability grants live in the role_capabilities table and are loaded and
// written alongside the role row.
type GormRoleRepository struct {
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// FindByID finds a role by its ID
func (r *GormRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	var role identity.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadCapabilities(ctx, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByIDForCompany finds a role by ID within a company
func (r *GormRoleRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.Role, error) {
	var role identity.Role
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadCapabilities(ctx, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByCodeForCompany finds a role by code within a company
func (r *GormRoleRepository) FindByCodeForCompany(ctx context.Context, companyID uuid.UUID, code string) (*identity.Role, error) {
	var role identity.Role
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND code = ?", companyID, strings.ToLower(strings.TrimSpace(code))).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadCapabilities(ctx, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// FindAll finds all roles matching the filter
func (r *GormRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Role, error) {
	var roles []identity.Role
	query := r.applyFilter(r.db.WithContext(ctx).Model(&identity.Role{}), filter)

	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	if err := r.loadCapabilitiesBatch(ctx, roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// FindAllForCompany finds all roles for a company
func (r *GormRoleRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]identity.Role, error) {
	var roles []identity.Role
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&identity.Role{}).Where("company_id = ?", companyID),
		filter,
	)

	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	if err := r.loadCapabilitiesBatch(ctx, roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// FindEffectiveCapabilities resolves the union of capabilities granted to the
// user through effective role assignments within the company.
func (r *GormRoleRepository) FindEffectiveCapabilities(ctx context.Context, userID, companyID uuid.UUID) ([]identity.Capability, error) {
	now := time.Now()

	var codenames []string
	if err := r.db.WithContext(ctx).
		Table("role_capabilities").
		Distinct("role_capabilities.codename").
		Joins("JOIN user_roles ON user_roles.role_id = role_capabilities.role_id").
		Where("user_roles.user_id = ? AND user_roles.company_id = ?", userID, companyID).
		Where("(user_roles.start_date IS NULL OR user_roles.start_date <= ?)", now).
		Where("(user_roles.end_date IS NULL OR user_roles.end_date >= ?)", now).
		Pluck("role_capabilities.codename", &codenames).Error; err != nil {
		return nil, err
	}

	caps := make([]identity.Capability, 0, len(codenames))
	for _, codename := range codenames {
		// Rows for codenames removed from the registry are skipped
		c, err := identity.ParseCapability(codename)
		if err != nil {
			continue
		}
		caps = append(caps, c)
	}
	return caps, nil
}

// Save creates or updates a role together with its capability rows
func (r *GormRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(role).Error; err != nil {
			return err
		}
		if err := tx.Delete(&identity.RoleCapability{}, "role_id = ?", role.ID).Error; err != nil {
			return err
		}

		caps := role.Capabilities()
		if len(caps) == 0 {
			return nil
		}
		rows := make([]identity.RoleCapability, 0, len(caps))
		for _, c := range caps {
			rows = append(rows, identity.RoleCapability{
				RoleID:    role.ID,
				Codename:  c.String(),
				CreatedAt: time.Now(),
			})
		}
		return tx.Create(&rows).Error
	})
}

// Delete deletes a role and its capability rows
func (r *GormRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&identity.RoleCapability{}, "role_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&identity.Role{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts roles matching the filter
func (r *GormRoleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&identity.Role{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRoleRepository) loadCapabilities(ctx context.Context, role *identity.Role) error {
	var rows []identity.RoleCapability
	if err := r.db.WithContext(ctx).
		Where("role_id = ?", role.ID).
		Find(&rows).Error; err != nil {
		return err
	}

	caps := make([]identity.Capability, 0, len(rows))
	for _, row := range rows {
		c, err := identity.ParseCapability(row.Codename)
		if err != nil {
			continue
		}
		caps = append(caps, c)
	}
	role.RestoreCapabilities(caps)
	return nil
}

func (r *GormRoleRepository) loadCapabilitiesBatch(ctx context.Context, roles []identity.Role) error {
	if len(roles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(roles))
	for i := range roles {
		ids[i] = roles[i].ID
	}

	var rows []identity.RoleCapability
	if err := r.db.WithContext(ctx).
		Where("role_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return err
	}

	byRole := make(map[uuid.UUID][]identity.Capability, len(roles))
	for _, row := range rows {
		c, err := identity.ParseCapability(row.Codename)
		if err != nil {
			continue
		}
		byRole[row.RoleID] = append(byRole[row.RoleID], c)
	}
	for i := range roles {
		roles[i].RestoreCapabilities(byRole[roles[i].ID])
	}
	return nil
}

func (r *GormRoleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPaginationAndOrder(query, filter, RoleSortFields)
}

func (r *GormRoleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_system":
			query = query.Where("is_system = ?", value)
		}
	}
	return query
}

// Ensure GormRoleRepository implements RoleRepository
var _ identity.RoleRepository = (*GormRoleRepository)(nil)
