package capability

import (
	"sort"
	"strings"
)

// ID is a caller-declared feature flag controlling which optional
// response blocks are serialized.
type ID string

const (
	Pricing ID = "octo/pricing"
	Content ID = "octo/content"
	Pickups ID = "octo/pickups"
)

type Set map[ID]struct{}

// Parse builds a Set from the raw comma-separated header value.
// Unknown capabilities are kept; they simply gate nothing.
func Parse(header string) Set {
	set := Set{}
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[ID(strings.ToLower(part))] = struct{}{}
	}
	return set
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// List returns the declared capabilities in sorted order, suitable for
// log attributes.
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}
