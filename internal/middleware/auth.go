package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tsubaki-dev/lesson-points-api/internal/auth"
	"github.com/tsubaki-dev/lesson-points-api/internal/constants"
	apierrors "github.com/tsubaki-dev/lesson-points-api/internal/errors"
)

// RequireAuth verifies the Bearer token and stamps the request's household
// scope into the context. Handlers never see raw claims; they read the
// typed Scope, which always carries a household id.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Token expired or invalid")
			c.Abort()
			return
		}

		// Validly issued tokens always carry a household id; check anyway.
		if claims.HouseholdID == 0 {
			apierrors.Unauthorized(c, "No household context")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyScope, auth.Scope{
			MemberID:    claims.MemberID,
			HouseholdID: claims.HouseholdID,
			Role:        claims.Role,
		})
		c.Next()
	}
}

// RequireParent rejects requests whose acting member is not a parent.
func RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, exists := GetScope(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !scope.IsParent() {
			apierrors.Forbidden(c, "Parent access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetScope retrieves the request's household scope from context.
func GetScope(c *gin.Context) (auth.Scope, bool) {
	value, exists := c.Get(constants.ContextKeyScope)
	if !exists {
		return auth.Scope{}, false
	}

	scope, ok := value.(auth.Scope)
	if !ok {
		return auth.Scope{}, false
	}
	return scope, true
}
