package api

import "fmt"

// Error is returned when the backend answers with a non-2xx status. Detail
// carries the optional human-readable message from the response body.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}
