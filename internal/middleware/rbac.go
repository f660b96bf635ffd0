package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
	"github.com/noah-isme/sma-schedule-api/pkg/response"
)

// RequireRoles enforces role-based access control. Anonymous callers get 401;
// authenticated callers outside roles get 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if !session.Authenticated() {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if !session.HasRole(roles...) {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
