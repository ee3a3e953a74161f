package extract

import "github.com/PuerkitoBio/goquery"

// RawEducation is one schooling entry as scraped from the education detail
// page.
type RawEducation struct {
	School    string
	Degree    string
	Field     string
	DateRange string
}

// Education reads every schooling entry from the education detail page,
// preserving page order.
func Education(html string) ([]RawEducation, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var entries []RawEducation
	doc.Find(selListItem).Each(func(_ int, item *goquery.Selection) {
		school := firstText(item, selItemTitle)
		if school == "" {
			return
		}
		// Subtitle renders as "Degree, Field of study".
		degree, field := splitComma(firstText(item, selItemSubtitle))

		entries = append(entries, RawEducation{
			School:    school,
			Degree:    degree,
			Field:     field,
			DateRange: nthText(item, selItemCaption, 0),
		})
	})
	return entries, nil
}
