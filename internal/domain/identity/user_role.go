package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// UserRole assigns a role to a user within a company. The assignment is
// unique per (user, role, company) and can carry a validity window.
type UserRole struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_company"`
	RoleID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_company"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_role_company"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
}

// TableName returns the database table name
func (UserRole) TableName() string {
	return "user_roles"
}

// NewUserRole creates a role assignment
func NewUserRole(userID, roleID, companyID uuid.UUID, start, end *time.Time) (*UserRole, error) {
	if start != nil && end != nil && end.Before(*start) {
		return nil, shared.NewDomainError("INVALID_VALIDITY_WINDOW", "Assignment end date cannot precede start date")
	}

	return &UserRole{
		ID:        uuid.New(),
		UserID:    userID,
		RoleID:    roleID,
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
		CreatedAt: time.Now(),
	}, nil
}

// IsEffective reports whether the assignment is active at the given time
func (a *UserRole) IsEffective(at time.Time) bool {
	if a.StartDate != nil && at.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && at.After(*a.EndDate) {
		return false
	}
	return true
}
