package command

import (
	"fmt"
	"strings"
)

// Marker is the placeholder token replaced by each input record's text.
const Marker = "{}"

// Template is an immutable command template. The zero value is not usable;
// construct with New so the marker invariant holds before any dispatch begins.
type Template struct {
	raw string
}

// New validates that raw contains the placeholder marker at least once.
// A template without the marker is a configuration error, never a per-item one.
func New(raw string) (*Template, error) {
	if !strings.Contains(raw, Marker) {
		return nil, fmt.Errorf("command template %q does not contain the placeholder %q", raw, Marker)
	}
	return &Template{raw: raw}, nil
}

// Render returns the template with every marker occurrence replaced by the
// literal input text. Pure: no recursion, no escaping, safe to call from any
// number of workers without synchronization.
func (t *Template) Render(input string) string {
	return strings.ReplaceAll(t.raw, Marker, input)
}

// String returns the raw template text.
func (t *Template) String() string {
	return t.raw
}
