package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Predefined role codes
const (
	RoleCodeAdmin      = "admin"
	RoleCodePurchaser  = "purchaser"
	RoleCodeStorekeeper = "storekeeper"
	RoleCodeAccountant = "accountant"
)

// Role groups capabilities for assignment to users. A role with a nil
// CompanyID is global (platform administration), otherwise it belongs to a
// single company.
type Role struct {
	shared.BaseAggregateRoot
	CompanyID    *uuid.UUID
	Name         string
	Code         string
	Description  string
	IsSystem     bool
	capabilities map[Capability]struct{}
}

// TableName returns the database table name
func (Role) TableName() string {
	return "roles"
}

// RoleCapability is the persistence row linking a role to a capability
type RoleCapability struct {
	RoleID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Codename  string     `gorm:"size:100;primaryKey"`
	CreatedAt time.Time
}

// TableName returns the database table name
func (RoleCapability) TableName() string {
	return "role_capabilities"
}

// NewRole creates a company-scoped role
func NewRole(companyID uuid.UUID, name, code string) (*Role, error) {
	if err := validateRoleName(name); err != nil {
		return nil, err
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_ROLE_CODE", "Role code cannot be empty")
	}

	role := &Role{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CompanyID:         &companyID,
		Name:              strings.TrimSpace(name),
		Code:              code,
		capabilities:      make(map[Capability]struct{}),
	}

	role.AddDomainEvent(NewRoleCreatedEvent(role))

	return role, nil
}

// NewGlobalRole creates a role that is not bound to any company
func NewGlobalRole(name, code string) (*Role, error) {
	if err := validateRoleName(name); err != nil {
		return nil, err
	}

	role := &Role{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Code:              strings.ToLower(strings.TrimSpace(code)),
		IsSystem:          true,
		capabilities:      make(map[Capability]struct{}),
	}
	return role, nil
}

// Grant adds a capability to the role. The capability must be registered.
func (r *Role) Grant(c Capability) error {
	if !c.IsRegistered() {
		return shared.NewDomainError("UNKNOWN_CAPABILITY", "Unknown permission codename: "+c.String())
	}
	if r.capabilities == nil {
		r.capabilities = make(map[Capability]struct{})
	}
	if _, ok := r.capabilities[c]; ok {
		return nil
	}

	r.capabilities[c] = struct{}{}
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Revoke removes a capability from the role
func (r *Role) Revoke(c Capability) {
	if _, ok := r.capabilities[c]; !ok {
		return
	}
	delete(r.capabilities, c)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetCapabilities replaces the role's capability set
func (r *Role) SetCapabilities(caps []Capability) error {
	next := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		if !c.IsRegistered() {
			return shared.NewDomainError("UNKNOWN_CAPABILITY", "Unknown permission codename: "+c.String())
		}
		next[c] = struct{}{}
	}

	r.capabilities = next
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// RestoreCapabilities rebuilds the capability set from persistence. Unlike
// SetCapabilities it does not validate, bump the version or stamp UpdatedAt.
func (r *Role) RestoreCapabilities(caps []Capability) {
	next := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		next[c] = struct{}{}
	}
	r.capabilities = next
}

// Has reports whether the role carries the capability
func (r *Role) Has(c Capability) bool {
	_, ok := r.capabilities[c]
	return ok
}

// Capabilities returns the role's capabilities
func (r *Role) Capabilities() []Capability {
	caps := make([]Capability, 0, len(r.capabilities))
	for c := range r.capabilities {
		caps = append(caps, c)
	}
	return caps
}

// IsGlobal reports whether the role applies across companies
func (r *Role) IsGlobal() bool {
	return r.CompanyID == nil
}

// BelongsTo reports whether the role is scoped to the given company
func (r *Role) BelongsTo(companyID uuid.UUID) bool {
	return r.CompanyID != nil && *r.CompanyID == companyID
}

// Rename changes the role name
func (r *Role) Rename(name string) error {
	if err := validateRoleName(name); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(name)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

func validateRoleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot exceed 100 characters")
	}
	return nil
}
