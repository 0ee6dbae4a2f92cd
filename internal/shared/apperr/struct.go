package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // message safe to show to the end user
	Fields    map[string]string // form/validation field errors (optional)
	Diag      any               // structured diagnostic payload for the debug panel (optional)
	Err       error             // internal error (for logs)
}
