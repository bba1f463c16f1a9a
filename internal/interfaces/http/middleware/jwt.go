package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tradecore/backend/internal/infrastructure/auth"
	"github.com/tradecore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys for JWT claims
const (
	ContextKeyClaims       = "jwt_claims"
	ContextKeyUserID       = "jwt_user_id"
	ContextKeyCompanyID    = "jwt_company_id"
	ContextKeyEmail        = "jwt_email"
	ContextKeySuperuser    = "jwt_is_superuser"
	ContextKeyCapabilities = "jwt_capabilities"
)

// JWTMiddlewareConfig configures the JWT authentication middleware
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService

	// TokenBlacklist is optional; when set, revoked tokens are rejected
	TokenBlacklist auth.TokenBlacklist

	// SkipPaths are exact paths that bypass authentication
	SkipPaths []string

	// SkipPathPrefixes are path prefixes that bypass authentication
	SkipPathPrefixes []string

	// OnError overrides the default error response
	OnError func(c *gin.Context, err error)

	Logger *zap.Logger
}

// JWTAuth returns a middleware that validates JWT access tokens and loads
// the claims into the request context.
func JWTAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	skipPaths := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skipPaths[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skipPaths[path]; ok {
			c.Next()
			return
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			handleAuthError(c, cfg, err)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err)
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			if claims.ID != "" {
				blacklisted, blErr := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if blErr != nil {
					// Blacklist backend failure must not take the API down
					if cfg.Logger != nil {
						cfg.Logger.Error("Token blacklist check failed", zap.Error(blErr))
					}
				} else if blacklisted {
					handleAuthError(c, cfg, auth.ErrTokenBlacklisted)
					return
				}
			}

			invalidated, invErr := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
			if invErr != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("User token invalidation check failed", zap.Error(invErr))
				}
			} else if invalidated {
				handleAuthError(c, cfg, auth.ErrTokenBlacklisted)
				return
			}
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyCompanyID, claims.CompanyID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeySuperuser, claims.IsSuperuser)
		c.Set(ContextKeyCapabilities, claims.Capabilities)

		c.Next()
	}
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}

	code := dto.ErrCodeUnauthorized
	message := "Authentication required"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		message = "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		message = "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidTokenType):
		message = "Invalid token type"
	case errors.Is(err, auth.ErrTokenBlacklisted):
		message = "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims):
		message = "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetJWTClaims retrieves the validated claims from gin.Context
func GetJWTClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetJWTUserID retrieves the authenticated user ID from gin.Context
func GetJWTUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}

// GetJWTCompanyID retrieves the authenticated company ID from gin.Context.
// Superusers carry no company, so the second return is false for them.
func GetJWTCompanyID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyCompanyID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}

// IsJWTSuperuser reports whether the authenticated user is a superuser
func IsJWTSuperuser(c *gin.Context) bool {
	return c.GetBool(ContextKeySuperuser)
}
