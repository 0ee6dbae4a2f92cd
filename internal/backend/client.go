// Package backend is the HTTP client for the collaborator business API.
// It owns the request plumbing (deadline, cache-busting headers, bearer auth,
// tolerant body decoding), the structured diagnostics the debug panel shows,
// and the normalization of the API's loosely-spelled responses into the
// canonical catalog types.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Deyvidbru/serido-hub/internal/shared/apperr"
)

const maxBodyBytes = 1 << 20

type Client struct {
	base    string
	build   string
	timeout time.Duration
	http    *http.Client
	log     *slog.Logger
}

type Config struct {
	BaseURL string
	Build   string
	Timeout time.Duration // per-request deadline, 6s when zero
}

func New(cfg Config, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		build:   cfg.Build,
		timeout: timeout,
		http:    &http.Client{},
		log:     log,
	}
}

// response keeps everything a caller needs to interpret the outcome, raw
// bytes included so schema checks can re-decode with a stricter shape.
type response struct {
	URL        string
	Status     int
	StatusText string
	Header     http.Header
	Body       any // decoded JSON, or {"raw": text} when the body is not JSON
	Raw        []byte
}

func (r *response) ok() bool { return r.Status >= 200 && r.Status < 300 }

// do issues one request with the client deadline applied on top of ctx.
// Caching is disabled explicitly on every call; the storefront bug this
// client replaced was chasing stale intermediary responses for days.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (*response, error) {
	url := c.base + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("X-Client-Build", c.build)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &apperr.AppError{
				Kind:      apperr.Timeout,
				PublicMsg: "O servidor demorou demais para responder.",
				Err:       err,
				Diag:      c.diagFromErr("request_timeout", method, url, err),
			}
		}
		return nil, &apperr.AppError{
			Kind:      apperr.Transport,
			PublicMsg: "Erro de conexão com o servidor.",
			Err:       err,
			Diag:      c.diagFromErr("request_failed", method, url, err),
		}
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))

	return &response{
		URL:        url,
		Status:     res.StatusCode,
		StatusText: res.Status,
		Header:     res.Header,
		Body:       decodeLoose(raw),
		Raw:        raw,
	}, nil
}

// decodeLoose never fails: invalid JSON degrades to a raw-text wrapper so
// error pages from proxies still end up readable in the diagnostic panel.
func decodeLoose(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]any{"raw": string(raw)}
	}
	return v
}

// serverMessage extracts the API's own error message when it sent one.
func serverMessage(body any) string {
	m, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := m["message"].(string)
	return msg
}
