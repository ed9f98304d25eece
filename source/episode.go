// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"fmt"
	"strings"
)

// Episode represents a discrete media segment within a release.
type Episode struct {
	// Data is the playable-file reference handed to LoadLinks.
	// Some sites pack several quality-tagged URLs in it, comma separated.
	Data string `json:"data"`
	// Display name (e.g. "Серия 1").
	Name string `json:"name"`
	// Poster is an optional still for the episode.
	Poster string `json:"poster,omitempty"`
	// Episode number in list order, starting from 1.
	Index uint16 `json:"index"`
}

// String returns the canonical string representation of the episode identifier.
func (e *Episode) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("Episode %d", e.Index)
}

// Variants returns the number of comma-separated tokens packed in Data.
func (e *Episode) Variants() int {
	if strings.TrimSpace(e.Data) == "" {
		return 0
	}
	return len(strings.Split(e.Data, ","))
}
