package network

import (
	"fmt"
	"strings"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Location   string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}
	msg := fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
	if loc := strings.TrimSpace(e.Location); loc != "" {
		msg += " location=" + loc
	}
	return msg
}
