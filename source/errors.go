package source

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLoad is matched by every LoadError through errors.Is.
var ErrLoad = errors.New("error loading")

// LoadError reports an upstream payload that is missing or cannot be parsed.
// It aborts the operation that produced it.
type LoadError struct {
	// Op is the adapter operation ("homepage", "search", "load", "links").
	Op string
	// URL is the upstream address, if known.
	URL    string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(ErrLoad.Error())
	if e.Op != "" {
		fmt.Fprintf(&b, " %s", e.Op)
	}
	if e.URL != "" {
		fmt.Fprintf(&b, " %s", e.URL)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }
