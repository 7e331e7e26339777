package output

import (
	"fmt"
	"strings"
)

// Format is how list results are written.
type Format int

const (
	// Human renders a short readable listing.
	Human Format = iota
	// JSON forwards the reply bytes untouched.
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "human"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "human":
		return Human, nil
	case "json":
		return JSON, nil
	default:
		return Human, fmt.Errorf("unknown output format %q (valid: human, json)", s)
	}
}
