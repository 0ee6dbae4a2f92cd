package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the web process reads from the environment.
// Defaults match the dev setup; prod overrides via real env vars.
type Config struct {
	Addr           string
	BackendBaseURL string // collaborator business API (the /api/* proxy target)
	PublicBaseURL  string // origin used to absolutize relative image URLs
	Build          string // build identifier carried on requests and diagnostics

	SessionDir string

	FlashCookieName string
	FlashSecret     []byte
	CartCookieName  string
	CartSecret      []byte
	SecureCookies   bool

	RequestTimeout time.Duration

	// Rate guard thresholds for the catalog loader. Heuristic values carried
	// over from the previous frontend; intent undocumented there, so they stay
	// configurable rather than "corrected".
	RateGuardMaxCalls int
	RateGuardWindow   time.Duration

	// Delay before the product dialog closes after a successful save, so the
	// success message stays visible for a beat.
	DialogCloseDelay time.Duration

	LoginPath string
	CartPath  string
}

func FromEnv() Config {
	return Config{
		Addr:           envOr("ADDR", ":8080"),
		BackendBaseURL: envOr("BACKEND_BASE_URL", "http://localhost:3000"),
		PublicBaseURL:  envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
		Build:          envOr("BUILD_ID", "dev"),

		SessionDir: envOr("SESSION_DIR", "./storage/session"),

		FlashCookieName: envOr("FLASH_COOKIE_NAME", "serido_flash"),
		FlashSecret:     []byte(envOr("FLASH_SECRET", "dev-flash-secret")),
		CartCookieName:  envOr("CART_COOKIE_NAME", "serido_cart"),
		CartSecret:      []byte(envOr("CART_SECRET", "dev-cart-secret")),
		SecureCookies:   envBool("SECURE_COOKIES", false),

		RequestTimeout: envDuration("BACKEND_TIMEOUT_MS", 6000*time.Millisecond),

		RateGuardMaxCalls: envInt("LOAD_GUARD_MAX_CALLS", 6),
		RateGuardWindow:   envDuration("LOAD_GUARD_WINDOW_MS", 4000*time.Millisecond),

		DialogCloseDelay: envDuration("DIALOG_CLOSE_DELAY_MS", 250*time.Millisecond),

		LoginPath: envOr("LOGIN_PATH", "/login"),
		CartPath:  envOr("CART_PATH", "/carrinho"),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
