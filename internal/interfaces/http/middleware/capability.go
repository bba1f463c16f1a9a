package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradecore/backend/internal/interfaces/http/dto"
)

// RequireCapability aborts with 403 unless the authenticated user holds the
// given capability. Superusers pass every check. Must run after JWTAuth.
func RequireCapability(codename string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetJWTClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}

		if !claims.HasCapability(codename) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Missing required capability: "+codename, GetRequestID(c)))
			return
		}

		c.Next()
	}
}

// RequireSuperuser aborts with 403 unless the authenticated user is a
// superuser. Must run after JWTAuth.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetJWTClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}

		if !claims.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Superuser access required", GetRequestID(c)))
			return
		}

		c.Next()
	}
}

// RequireAnyCapability aborts with 403 unless the authenticated user holds at
// least one of the given capabilities.
func RequireAnyCapability(codenames ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetJWTClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}

		if !claims.HasAnyCapability(codenames...) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Insufficient capabilities", GetRequestID(c)))
			return
		}

		c.Next()
	}
}
