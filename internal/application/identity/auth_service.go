package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"github.com/tradecore/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	roleRepo   identity.RoleRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", req.Email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", req.Email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		s.logger.Warn("Login attempt for inactive account", zap.String("email", req.Email))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	if !user.CheckPassword(req.Password) {
		user.RecordFailedAttempt()
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to record login failure", zap.Error(err))
		}

		if user.IsLocked() {
			s.logger.Warn("Account locked after repeated failures",
				zap.String("email", req.Email),
				zap.Int("attempts", user.FailedAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	capabilities, err := s.collectCapabilities(ctx, user)
	if err != nil {
		s.logger.Error("Failed to resolve user capabilities", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user permissions")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID:    user.CompanyID,
		UserID:       user.ID,
		Email:        user.Email,
		IsSuperuser:  user.IsSuperuser,
		Capabilities: capabilities,
	})
	if err != nil {
		s.logger.Error("Failed to generate tokens", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// The login itself succeeded; persisting the stamp is best-effort.
		s.logger.Error("Failed to record successful login", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID.String()))

	return &LoginResponse{
		User:   ToUserResponse(user),
		Tokens: tokens,
	}, nil
}

// Logout revokes the presented access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}

	s.logger.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

// LogoutAllSessions revokes every token issued to the user so far
func (s *AuthService) LogoutAllSessions(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), ttl)
}

// Refresh exchanges a refresh token for a fresh token pair. Capabilities are
// re-resolved so role changes apply immediately.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid")
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time)
	if err != nil {
		return nil, err
	}
	if invalidated {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Session has been revoked")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "User no longer exists")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	capabilities, err := s.collectCapabilities(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.jwtService.RefreshTokenPair(req.RefreshToken, capabilities)
}

// ChangePassword changes the user's own password after verifying the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	if err := user.ChangePassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	// Cut off existing sessions issued with the old password.
	return s.LogoutAllSessions(ctx, userID, 7*24*time.Hour)
}

// collectCapabilities resolves the codenames placed in the token. Superusers
// carry none: they bypass checks entirely.
func (s *AuthService) collectCapabilities(ctx context.Context, user *identity.User) ([]string, error) {
	if user.IsSuperuser || user.CompanyID == nil {
		return nil, nil
	}

	caps, err := s.roleRepo.FindEffectiveCapabilities(ctx, user.ID, *user.CompanyID)
	if err != nil {
		return nil, err
	}

	codenames := make([]string, 0, len(caps))
	for _, c := range caps {
		codenames = append(codenames, c.String())
	}
	return codenames, nil
}
