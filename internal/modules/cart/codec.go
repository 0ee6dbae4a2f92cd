package cart

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrInvalid = errors.New("invalid cart cookie")

// Codec reads and writes the cart cookie. Writes are always signed
// (base64(json).base64(hmac)); reads also accept the unsigned shapes older
// clients left behind, since a stale badge is worse than a lenient parse.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: cookieName, Secure: secure}
}

func (c *Codec) Encode(cart Cart) (string, error) {
	b, err := json.Marshal(cart)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (Cart, error) {
	parts := strings.Split(v, ".")
	if len(parts) == 2 && verify(c.Secret, parts[0], parts[1]) {
		raw, err := base64.RawURLEncoding.DecodeString(parts[0])
		if err != nil {
			return Cart{}, ErrInvalid
		}
		var cart Cart
		if err := json.Unmarshal(raw, &cart); err != nil {
			return Cart{}, ErrInvalid
		}
		return cart, nil
	}
	if cart, ok := tryLegacy(v); ok {
		return cart, nil
	}
	return Cart{}, ErrInvalid
}

// tryLegacy handles the unsigned cookie shapes in the wild: URL-escaped
// JSON, raw JSON, base64url(JSON).
func tryLegacy(raw string) (Cart, bool) {
	s := raw
	if u, err := url.QueryUnescape(raw); err == nil && u != "" {
		s = u
	}
	if cart, ok := parseJSON([]byte(s)); ok {
		return cart, true
	}
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		if cart, ok := parseJSON(b); ok {
			return cart, true
		}
	}
	return Cart{}, false
}

func parseJSON(b []byte) (Cart, bool) {
	var cart Cart
	if err := json.Unmarshal(b, &cart); err != nil {
		return Cart{}, false
	}
	return cart, true
}

// Load returns the cart from the request cookie; a missing or broken cookie
// is just an empty cart.
func (c *Codec) Load(ctx *gin.Context) Cart {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return Cart{}
	}
	cart, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return Cart{}
	}
	return cart
}

func (c *Codec) Save(ctx *gin.Context, cart Cart) error {
	val, err := c.Encode(cart)
	if err != nil {
		return err
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
