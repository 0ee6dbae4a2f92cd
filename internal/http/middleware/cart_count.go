package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Deyvidbru/serido-hub/internal/modules/cart"
)

const cartCountKey = "cart_count"

// CartCount decodes the cart cookie just far enough to fill the header badge.
func CartCount(codec *cart.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := codec.Load(c)
		c.Set(cartCountKey, ct.Count())
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
