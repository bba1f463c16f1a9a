package identity

import (
	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Event types for the user aggregate
const (
	EventUserCreated      = "identity.user.created"
	EventRoleCreated      = "identity.role.created"
	EventUserRoleAssigned = "identity.user.role_assigned"
)

// UserCreatedEvent is emitted when a user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserCreatedEvent creates a user created event
func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	companyID := uuid.Nil
	if u.CompanyID != nil {
		companyID = *u.CompanyID
	}
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserCreated, "User", u.ID, companyID),
		Email:           u.Email,
	}
}

// RoleCreatedEvent is emitted when a role is created
type RoleCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewRoleCreatedEvent creates a role created event
func NewRoleCreatedEvent(r *Role) *RoleCreatedEvent {
	companyID := uuid.Nil
	if r.CompanyID != nil {
		companyID = *r.CompanyID
	}
	return &RoleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventRoleCreated, "Role", r.ID, companyID),
		Name:            r.Name,
		Code:            r.Code,
	}
}
