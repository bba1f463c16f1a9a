package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Actor is the authenticated principal performing a request
type Actor struct {
	UserID      uuid.UUID
	CompanyID   *uuid.UUID
	IsSuperuser bool
}

// AuthorizationService answers permission questions. Checks against codenames
// that are not in the capability registry fail loudly instead of denying
// silently: a typo in a call site is a bug, not a policy decision.
type AuthorizationService struct {
	roleRepo identity.RoleRepository
	logger   *zap.Logger
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(roleRepo identity.RoleRepository, logger *zap.Logger) *AuthorizationService {
	return &AuthorizationService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// Authorize returns nil when the actor may perform the operation named by the
// codename. Superusers pass every registered check.
func (s *AuthorizationService) Authorize(ctx context.Context, actor Actor, codename string) error {
	capability, err := identity.ParseCapability(codename)
	if err != nil {
		s.logger.Error("Permission check against unregistered codename",
			zap.String("codename", codename),
			zap.String("user_id", actor.UserID.String()))
		return err
	}

	if actor.IsSuperuser {
		return nil
	}
	if actor.CompanyID == nil {
		return shared.ErrForbidden
	}

	granted, err := s.roleRepo.FindEffectiveCapabilities(ctx, actor.UserID, *actor.CompanyID)
	if err != nil {
		return err
	}
	for _, c := range granted {
		if c == capability {
			return nil
		}
	}

	return shared.ErrForbidden
}

// AuthorizeOrSelf authorizes the operation, additionally allowing an actor to
// act on their own record regardless of capability grants.
func (s *AuthorizationService) AuthorizeOrSelf(ctx context.Context, actor Actor, targetUserID uuid.UUID, codename string) error {
	// Parse first so an unregistered codename fails even on the self path.
	if _, err := identity.ParseCapability(codename); err != nil {
		s.logger.Error("Permission check against unregistered codename",
			zap.String("codename", codename),
			zap.String("user_id", actor.UserID.String()))
		return err
	}

	if actor.UserID == targetUserID {
		return nil
	}
	return s.Authorize(ctx, actor, codename)
}

// Can is the boolean form of Authorize, for callers that branch rather than
// reject. Unregistered codenames still surface as errors.
func (s *AuthorizationService) Can(ctx context.Context, actor Actor, codename string) (bool, error) {
	err := s.Authorize(ctx, actor, codename)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, shared.ErrForbidden) {
		return false, nil
	}
	return false, err
}
