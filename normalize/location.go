package normalize

import "strings"

// Location is a free-text location split into its components. Fields the
// source text did not provide are empty.
type Location struct {
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
	Country  string `json:"country,omitempty"`
}

// ParseLocation splits a rendered location string on commas:
// "City, Province, Country", "City, Country", or a bare "City".
// Returns nil for an empty input.
func ParseLocation(s string) *Location {
	s = CleanText(s)
	if s == "" {
		return nil
	}
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return &Location{City: parts[0]}
	case 2:
		return &Location{City: parts[0], Country: parts[1]}
	default:
		return &Location{City: parts[0], Province: parts[1], Country: parts[2]}
	}
}
