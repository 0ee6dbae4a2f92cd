package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/session"
)

const CtxKeySession = "sess"

// SessionLoad resolves the persisted session once per request and parks it in
// the context. Handlers never touch the session store directly.
func SessionLoad(reader *session.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess := reader.Current(); sess != nil {
			c.Set(CtxKeySession, sess)
		}
		c.Next()
	}
}

// CurrentSession returns the session placed by SessionLoad, nil for a
// visitor.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(CtxKeySession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
