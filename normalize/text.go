// Package normalize converts raw scraped strings into typed values: cleaned
// text, calendar dates, durations in days, and structured locations. All
// functions are deterministic and have no dependency on the browser.
package normalize

import "strings"

// CleanText trims a raw scraped string and collapses internal whitespace
// runs (including newlines from rendered markup) into single spaces.
// An all-whitespace input yields "".
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
