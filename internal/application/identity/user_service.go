package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles user administration within a company
type UserService struct {
	userRepo     identity.UserRepository
	roleRepo     identity.RoleRepository
	userRoleRepo identity.UserRoleRepository
	logger       *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	userRoleRepo identity.UserRoleRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		userRoleRepo: userRoleRepo,
		logger:       logger,
	}
}

// Create adds a user to a company, optionally assigning initial roles
func (s *UserService) Create(ctx context.Context, companyID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	}

	user, err := identity.NewUser(companyID, req.Email, req.Name, req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	for _, roleID := range req.RoleIDs {
		// Assigning a role from another company must look like a missing role.
		if _, err := s.roleRepo.FindByIDForCompany(ctx, companyID, roleID); err != nil {
			return nil, err
		}
		assignment, err := identity.NewUserRole(user.ID, roleID, companyID, nil, nil)
		if err != nil {
			return nil, err
		}
		if err := s.userRoleRepo.Save(ctx, assignment); err != nil {
			return nil, err
		}
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", companyID.String()))

	return ToUserResponse(user), nil
}

// GetByID retrieves a user within a company
func (s *UserService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves users of a company
func (s *UserService) List(ctx context.Context, companyID uuid.UUID, filter UserListFilter) ([]UserResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	users, err := s.userRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *ToUserResponse(&users[i]))
	}
	return responses, nil
}

// Deactivate disables a user's account
func (s *UserService) Deactivate(ctx context.Context, companyID, id uuid.UUID) error {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := user.Deactivate(); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Activate re-enables a deactivated or locked account
func (s *UserService) Activate(ctx context.Context, companyID, id uuid.UUID) error {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return err
	}
	user.Activate()
	return s.userRepo.Save(ctx, user)
}

// AssignRole assigns a role to a user within the company
func (s *UserService) AssignRole(ctx context.Context, companyID uuid.UUID, req AssignRoleRequest) error {
	if _, err := s.userRepo.FindByIDForCompany(ctx, companyID, req.UserID); err != nil {
		return err
	}
	if _, err := s.roleRepo.FindByIDForCompany(ctx, companyID, req.RoleID); err != nil {
		return err
	}

	exists, err := s.userRoleRepo.Exists(ctx, req.UserID, req.RoleID, companyID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Role is already assigned to this user")
	}

	assignment, err := identity.NewUserRole(req.UserID, req.RoleID, companyID, req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	return s.userRoleRepo.Save(ctx, assignment)
}

// UnassignRole removes a role assignment
func (s *UserService) UnassignRole(ctx context.Context, companyID, userID, roleID uuid.UUID) error {
	return s.userRoleRepo.Delete(ctx, userID, roleID, companyID)
}
