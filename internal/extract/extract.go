// Package extract reads raw per-entity records out of captured LinkedIn
// page markup with CSS selectors. Selectors are brittle by nature and
// tracked against the live site; a field whose selector no longer matches
// is missing data, not an error. Output is raw strings — normalization
// happens in the caller.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entity list selectors shared by the profile and detail pages.
const (
	selListItem = `li.pvs-list__paged-list-item`

	selItemTitle    = `div.t-bold span[aria-hidden=true]`
	selItemSubtitle = `span.t-14.t-normal span[aria-hidden=true]`
	selItemCaption  = `span.t-14.t-normal.t-black--light span[aria-hidden=true]`
	selItemBody     = `div.inline-show-more-text span[aria-hidden=true]`
)

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("extract: parse document: %w", err)
	}
	return doc, nil
}

// firstText returns the trimmed text of the first match under s, or "".
func firstText(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

// nthText returns the trimmed text of the n-th match (0-based) under s.
func nthText(s *goquery.Selection, selector string, n int) string {
	return strings.TrimSpace(s.Find(selector).Eq(n).Text())
}

// splitDot splits a "left · right" rendered pair, tolerating a missing
// separator.
func splitDot(s string) (left, right string) {
	return splitPair(s, "·")
}

// splitComma splits a "left, right" rendered pair, tolerating a missing
// separator.
func splitComma(s string) (left, right string) {
	return splitPair(s, ",")
}

func splitPair(s, sep string) (left, right string) {
	parts := strings.SplitN(s, sep, 2)
	left = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		right = strings.TrimSpace(parts[1])
	}
	return left, right
}
