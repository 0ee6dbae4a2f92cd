package layout

import "strings"

// Pages that still show the public (logged-out) header even when a session
// exists, e.g. the auth screens themselves.
var publicPages = map[string]bool{
	"login.html":        true,
	"cadastro.html":     true,
	"register.html":     true,
	"signin.html":       true,
	"signup.html":       true,
	"index_public.html": true,
}

// HeaderVariant picks the header partial for the page requesting it.
func HeaderVariant(page string) string {
	page = strings.ToLower(strings.TrimSpace(page))
	if i := strings.LastIndexByte(page, '/'); i >= 0 {
		page = page[i+1:]
	}
	if publicPages[page] {
		return "header_public"
	}
	return "header_app"
}
