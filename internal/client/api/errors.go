package api

import "fmt"

// APIError is a structured error response from the server (non-2xx status).
// Detail carries the server's {"detail": ...} message verbatim when the body
// was parseable; otherwise the error text falls back to a generic message
// including the status code. Match with errors.As.
type APIError struct {
	Op     string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}
