package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tradecore/backend/internal/domain/identity"
	"github.com/tradecore/backend/internal/domain/shared"
	"github.com/tradecore/backend/internal/infrastructure/auth"
	"github.com/tradecore/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "tradecore-test",
		MaxRefreshCount:        10,
	})
}

func newTestAuthService(userRepo *MockUserRepository, roleRepo *MockRoleRepository, blacklist auth.TokenBlacklist) *AuthService {
	return NewAuthService(userRepo, roleRepo, testJWTService(), blacklist, zap.NewNop())
}

func newTestUser(t *testing.T, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(uuid.New(), "user@example.com", "Test User", password)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login returns tokens and records login", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		roleRepo.On("FindEffectiveCapabilities", ctx, user.ID, *user.CompanyID).
			Return([]identity.Capability{identity.CapViewProduct}, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		resp, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)
		assert.Equal(t, user.Email, resp.User.Email)
		assert.NotNil(t, user.LastLoginAt)
		assert.Zero(t, user.FailedAttempts)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		userRepo.On("FindByEmail", ctx, "missing@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginRequest{Email: "missing@example.com", Password: "whatever1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("wrong password records failed attempt", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		_, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "wrong-pass"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
		assert.Equal(t, 1, user.FailedAttempts)
		userRepo.AssertExpectations(t)
	})

	t.Run("repeated failures lock the account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		var err error
		for i := 0; i < 5; i++ {
			_, err = service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "wrong-pass"})
		}

		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
		assert.True(t, user.IsLocked())

		// Even the correct password is refused while the lock holds.
		_, err = service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		require.NoError(t, user.Deactivate())
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("superuser login skips capability resolution", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		super, err := identity.NewSuperuser("root@example.com", "Root", "Str0ngPass!")
		require.NoError(t, err)
		userRepo.On("FindByEmail", ctx, "root@example.com").Return(super, nil)
		userRepo.On("Save", ctx, super).Return(nil)

		resp, err := service.Login(ctx, LoginRequest{Email: "root@example.com", Password: "Str0ngPass!"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		roleRepo.AssertNotCalled(t, "FindEffectiveCapabilities", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := newTestAuthService(userRepo, roleRepo, blacklist)

	user := newTestUser(t, "Str0ngPass!")
	userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	roleRepo.On("FindEffectiveCapabilities", ctx, user.ID, *user.CompanyID).
		Return([]identity.Capability{}, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	resp, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})
	require.NoError(t, err)

	jwtService := testJWTService()
	claims, err := jwtService.ValidateAccessToken(resp.Tokens.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, claims))

	revoked, err := blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh re-resolves capabilities", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)
		roleRepo.On("FindEffectiveCapabilities", ctx, user.ID, *user.CompanyID).
			Return([]identity.Capability{identity.CapViewProduct}, nil).Once()

		resp, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})
		require.NoError(t, err)

		// Role assignments changed between login and refresh.
		roleRepo.On("FindEffectiveCapabilities", ctx, user.ID, *user.CompanyID).
			Return([]identity.Capability{identity.CapViewProduct, identity.CapAddProduct}, nil).Once()

		pair, err := service.Refresh(ctx, RefreshRequest{RefreshToken: resp.Tokens.RefreshToken})
		require.NoError(t, err)

		claims, err := testJWTService().ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"view_product", "add_product"}, claims.Capabilities)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		_, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "not-a-token"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid or expired")
	})

	t.Run("user-wide revocation blocks refresh", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		service := newTestAuthService(userRepo, roleRepo, blacklist)

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)
		roleRepo.On("FindEffectiveCapabilities", ctx, user.ID, *user.CompanyID).
			Return([]identity.Capability{}, nil)

		resp, err := service.Login(ctx, LoginRequest{Email: "user@example.com", Password: "Str0ngPass!"})
		require.NoError(t, err)

		require.NoError(t, service.LogoutAllSessions(ctx, user.ID, time.Hour))

		_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: resp.Tokens.RefreshToken})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "revoked")
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("changes password and revokes sessions", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		blacklist := auth.NewInMemoryTokenBlacklist()
		service := newTestAuthService(userRepo, roleRepo, blacklist)

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "Str0ngPass!",
			NewPassword:     "N3wStr0ngPass!",
		})

		require.NoError(t, err)
		assert.True(t, user.CheckPassword("N3wStr0ngPass!"))
		assert.False(t, user.CheckPassword("Str0ngPass!"))
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := newTestAuthService(userRepo, roleRepo, auth.NewInMemoryTokenBlacklist())

		user := newTestUser(t, "Str0ngPass!")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "wrong-pass",
			NewPassword:     "N3wStr0ngPass!",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Current password is incorrect")
		assert.True(t, user.CheckPassword("Str0ngPass!"))
	})
}
