package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Deyvidbru/serido-hub/internal/backend"
	"github.com/Deyvidbru/serido-hub/internal/config"
	apphttp "github.com/Deyvidbru/serido-hub/internal/http"
	"github.com/Deyvidbru/serido-hub/internal/http/flash"
	"github.com/Deyvidbru/serido-hub/internal/modules/cart"
	"github.com/Deyvidbru/serido-hub/internal/session"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.FromEnv()

	store := session.NewStore(cfg.SessionDir)
	reader := session.NewReader(store, logger)

	api := backend.New(backend.Config{
		BaseURL: cfg.BackendBaseURL,
		Build:   cfg.Build,
		Timeout: cfg.RequestTimeout,
	}, logger)

	r, err := apphttp.NewRouter(cfg, apphttp.Deps{
		Log:        logger,
		Reader:     reader,
		API:        api,
		FlashCodec: flash.NewCodec(cfg.FlashSecret, cfg.FlashCookieName, cfg.SecureCookies),
		CartCodec:  cart.NewCodec(cfg.CartSecret, cfg.CartCookieName, cfg.SecureCookies),
	})
	if err != nil {
		log.Fatalf("router setup failed: %v", err)
	}

	logger.Info("listening", "addr", cfg.Addr, "build", cfg.Build)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
