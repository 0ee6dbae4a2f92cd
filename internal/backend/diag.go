package backend

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// Diagnostic is the structured payload behind the debug panel: enough detail
// to reconstruct what the API actually answered without re-running anything.
type Diagnostic struct {
	ID              string            `json:"id"`
	Where           string            `json:"where"`
	Method          string            `json:"method,omitempty"`
	URL             string            `json:"url,omitempty"`
	Status          int               `json:"status,omitempty"`
	StatusText      string            `json:"statusText,omitempty"`
	ResponseHeaders map[string]string `json:"responseHeaders,omitempty"`
	ResponseBody    any               `json:"responseBody,omitempty"`
	PayloadSent     any               `json:"payloadSent,omitempty"`
	Error           string            `json:"error,omitempty"`
	Hint            string            `json:"hint,omitempty"`
	Build           string            `json:"build"`
}

func (c *Client) diagFromResponse(where string, method string, r *response) *Diagnostic {
	d := &Diagnostic{
		ID:              uuid.NewString(),
		Where:           where,
		Method:          method,
		URL:             r.URL,
		Status:          r.Status,
		StatusText:      r.StatusText,
		ResponseHeaders: headersToMap(r.Header),
		ResponseBody:    r.Body,
		Build:           c.build,
	}
	c.logDiag(d)
	return d
}

func (c *Client) diagFromErr(where, method, url string, err error) *Diagnostic {
	d := &Diagnostic{
		ID:     uuid.NewString(),
		Where:  where,
		Method: method,
		URL:    url,
		Error:  err.Error(),
		Build:  c.build,
	}
	c.logDiag(d)
	return d
}

func (c *Client) logDiag(d *Diagnostic) {
	c.log.Error("backend_diagnostic",
		slog.String("diag_id", d.ID),
		slog.String("where", d.Where),
		slog.String("method", d.Method),
		slog.String("url", d.URL),
		slog.Int("status", d.Status),
		slog.String("error", d.Error),
		slog.String("build", d.Build),
	)
}

func headersToMap(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
