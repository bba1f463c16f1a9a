package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RoleService handles role and capability administration
type RoleService struct {
	roleRepo identity.RoleRepository
	logger   *zap.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo identity.RoleRepository, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// Create creates a company role. Every capability codename must be registered.
func (s *RoleService) Create(ctx context.Context, companyID uuid.UUID, req CreateRoleRequest) (*RoleResponse, error) {
	existing, err := s.roleRepo.FindByCodeForCompany(ctx, companyID, req.Code)
	if err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Role with this code already exists")
	}

	role, err := identity.NewRole(companyID, req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	role.Description = req.Description

	caps, err := parseCapabilities(req.Capabilities)
	if err != nil {
		return nil, err
	}
	if err := role.SetCapabilities(caps); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("Role created",
		zap.String("role_id", role.ID.String()),
		zap.String("code", role.Code))

	return ToRoleResponse(role), nil
}

// GetByID retrieves a role within a company
func (s *RoleService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToRoleResponse(role), nil
}

// List retrieves all roles of a company
func (s *RoleService) List(ctx context.Context, companyID uuid.UUID) ([]RoleResponse, error) {
	roles, err := s.roleRepo.FindAllForCompany(ctx, companyID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, *ToRoleResponse(&roles[i]))
	}
	return responses, nil
}

// SetCapabilities replaces a role's capability set
func (s *RoleService) SetCapabilities(ctx context.Context, companyID, roleID uuid.UUID, req SetCapabilitiesRequest) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByIDForCompany(ctx, companyID, roleID)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, shared.NewDomainError("SYSTEM_ROLE", "System roles cannot be modified")
	}

	caps, err := parseCapabilities(req.Capabilities)
	if err != nil {
		return nil, err
	}
	if err := role.SetCapabilities(caps); err != nil {
		return nil, err
	}
	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	return ToRoleResponse(role), nil
}

// ListCapabilities returns every registered capability codename
func (s *RoleService) ListCapabilities() []string {
	caps := identity.AllCapabilities()
	codenames := make([]string, 0, len(caps))
	for _, c := range caps {
		codenames = append(codenames, c.String())
	}
	return codenames
}

func parseCapabilities(codenames []string) ([]identity.Capability, error) {
	caps := make([]identity.Capability, 0, len(codenames))
	for _, codename := range codenames {
		c, err := identity.ParseCapability(codename)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, nil
}
