package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"legal-office-management/internal/model"
	"legal-office-management/pkg/response"
)

const (
	scopeKey     = "scope"
	apiKeyHeader = "X-API-Key"
)

// Auth accepts an API key from X-API-Key or "Authorization: Bearer <key>" and
// stores the caller scope on the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.keys) == 0 {
			c.Set(scopeKey, model.Scope{UserID: "anonymous", Source: "api"})
			c.Next()
			return
		}

		presented := c.GetHeader(apiKeyHeader)
		if presented == "" {
			if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
				presented = strings.TrimSpace(token)
			}
		}
		if presented == "" {
			response.Unauthorized(c)
			return
		}

		for _, k := range m.keys {
			if subtle.ConstantTimeCompare([]byte(presented), []byte(k.secret)) == 1 {
				c.Set(scopeKey, model.Scope{UserID: k.name, Source: "api"})
				c.Next()
				return
			}
		}

		m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected key from %s", c.ClientIP())
		response.Unauthorized(c)
	}
}

// GetScope returns the scope set by Auth, or an empty scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
