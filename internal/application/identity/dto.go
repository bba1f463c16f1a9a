package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/infrastructure/auth"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued tokens and the authenticated user
type LoginResponse struct {
	User   *UserResponse   `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// RefreshRequest represents a token refresh attempt
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change by the user themselves
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// RegisterCompanyRequest registers a new company together with its first
// administrator account.
type RegisterCompanyRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Address       string `json:"address" binding:"max=500"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminName     string `json:"admin_name" binding:"required,min=1,max=200"`
	AdminPassword string `json:"admin_password" binding:"required,min=8,max=128"`
}

// UpdateCompanyRequest updates mutable company fields
type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	Currency *string `json:"currency" binding:"omitempty,len=3"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest creates a user within a company
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Name     string      `json:"name" binding:"required,min=1,max=200"`
	Password string      `json:"password" binding:"required,min=8,max=128"`
	RoleIDs  []uuid.UUID `json:"role_ids"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsSuperuser bool       `json:"is_superuser"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active locked deactivated"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// CreateRoleRequest creates a role within a company
type CreateRoleRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Code         string   `json:"code" binding:"required,min=1,max=50"`
	Description  string   `json:"description" binding:"max=500"`
	Capabilities []string `json:"capabilities" binding:"omitempty,dive,capability"`
}

// SetCapabilitiesRequest replaces a role's capability set
type SetCapabilitiesRequest struct {
	Capabilities []string `json:"capabilities" binding:"required,dive,capability"`
}

// RoleResponse represents a role in API responses
type RoleResponse struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	IsSystem     bool       `json:"is_system"`
	Capabilities []string   `json:"capabilities"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AssignRoleRequest assigns a role to a user, optionally time-bounded
type AssignRoleRequest struct {
	UserID    uuid.UUID  `json:"user_id" binding:"required"`
	RoleID    uuid.UUID  `json:"role_id" binding:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// AuditLogResponse represents an audit record in API responses
type AuditLogResponse struct {
	ID         uuid.UUID  `json:"id"`
	CompanyID  *uuid.UUID `json:"company_id,omitempty"`
	ActorID    uuid.UUID  `json:"actor_id"`
	Action     string     `json:"action"`
	TargetType string     `json:"target_type,omitempty"`
	TargetID   string     `json:"target_id,omitempty"`
	Details    string     `json:"details,omitempty"`
	Method     string     `json:"method,omitempty"`
	Path       string     `json:"path,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AuditLogFilter represents filter options for audit log queries
type AuditLogFilter struct {
	ActorID  *uuid.UUID `form:"actor_id"`
	Page     int        `form:"page" binding:"min=0"`
	PageSize int        `form:"page_size" binding:"min=0,max=100"`
}

// ToCompanyResponse converts a domain Company to CompanyResponse
func ToCompanyResponse(c *identity.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Address:   c.Address,
		Currency:  string(c.Currency),
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		IsSuperuser: u.IsSuperuser,
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToRoleResponse converts a domain Role to RoleResponse
func ToRoleResponse(r *identity.Role) *RoleResponse {
	caps := r.Capabilities()
	codenames := make([]string, 0, len(caps))
	for _, c := range caps {
		codenames = append(codenames, c.String())
	}
	return &RoleResponse{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		Name:         r.Name,
		Code:         r.Code,
		Description:  r.Description,
		IsSystem:     r.IsSystem,
		Capabilities: codenames,
		CreatedAt:    r.CreatedAt,
	}
}

// ToAuditLogResponse converts a domain AuditLog to AuditLogResponse
func ToAuditLogResponse(l *identity.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:         l.ID,
		CompanyID:  l.CompanyID,
		ActorID:    l.ActorID,
		Action:     l.Action,
		TargetType: l.TargetType,
		TargetID:   l.TargetID,
		Details:    l.Details,
		Method:     l.Method,
		Path:       l.Path,
		CreatedAt:  l.CreatedAt,
	}
}
