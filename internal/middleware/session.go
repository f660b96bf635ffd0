package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-schedule-api/internal/models"
	"github.com/noah-isme/sma-schedule-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the caller's session.
const ContextSessionKey = "session"

type sessionResolver interface {
	Resolve(header string) (models.Session, error)
}

// Session attaches a models.Session to every request. Requests without an
// Authorization header proceed as anonymous; a presented but invalid token
// is rejected with 401.
func Session(resolver sessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := resolver.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// SessionFromContext returns the request session, anonymous when unset.
func SessionFromContext(c *gin.Context) models.Session {
	if value, exists := c.Get(ContextSessionKey); exists {
		if session, ok := value.(models.Session); ok {
			return session
		}
	}
	return models.AnonymousSession()
}
