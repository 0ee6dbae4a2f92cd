package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/session"
	"github.com/Deyvidbru/serido-hub/pkg/view"
)

// RequireSeller guards the merchant console:
//   - no session: flash + redirect to login carrying return_to (JSON gets 401)
//   - session without the seller role: flash + redirect home (JSON gets 403)
func RequireSeller(flashCodec *flash.Codec, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "authentication required",
					"request_id": GetRequestID(c),
				})
				return
			}

			returnTo := c.Request.URL.RequestURI()
			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashWarning,
				Message: "Faça login para acessar o painel da loja.",
			})
			c.Redirect(http.StatusFound, loginPath+"?return_to="+url.QueryEscape(returnTo))
			c.Abort()
			return
		}

		if sess.Role() != session.RoleSeller {
			if WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error":      "forbidden",
					"request_id": GetRequestID(c),
				})
				return
			}

			SetFlashCookie(c, flashCodec, view.Flash{
				Kind:    view.FlashError,
				Message: "Esta área é exclusiva para vendedores.",
			})
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
