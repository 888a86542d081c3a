package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/session"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the resolved session.
const ContextSessionKey = "currentSession"

// SessionKeyHeader lets non-browser clients carry the session key.
const SessionKeyHeader = "X-Session-Key"

// LoginPath is the single redirect target for every guard failure.
const LoginPath = "/login"

// SessionKey extracts the client's session key from the cookie or header.
func SessionKey(c *gin.Context, cookieName string) string {
	if key, err := c.Cookie(cookieName); err == nil && key != "" {
		return key
	}
	return c.GetHeader(SessionKeyHeader)
}

// Resolve loads the stored session for the request and attaches it to the
// context when usable. It never blocks: missing, malformed and empty-role
// records simply leave the context without a session. The lookup runs on
// every request; nothing is cached and nothing expires.
func Resolve(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := SessionKey(c, cookieName)
		if key == "" {
			c.Next()
			return
		}
		record, err := store.Get(c.Request.Context(), key)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read session"))
			c.Abort()
			return
		}
		if record.Valid() {
			c.Set(ContextSessionKey, record)
		}
		c.Next()
	}
}

// RequireRoles guards a route with an allowed-roles set. Every failure mode
// gets the identical answer: a login redirect. A logged-in user of the wrong
// role is told nothing more than a logged-out one.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		record := SessionFromContext(c)
		if record == nil {
			response.Redirect(c, appErrors.ErrUnauthorized, LoginPath)
			c.Abort()
			return
		}
		if _, ok := allowed[record.Role]; !ok {
			response.Redirect(c, appErrors.ErrUnauthorized, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the resolved session or nil.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	record, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return record
}
