package extract

import "github.com/PuerkitoBio/goquery"

// RawPosition is one work-history entry as scraped from the experience
// detail page.
type RawPosition struct {
	Title          string
	Company        string
	EmploymentType string
	DateRange      string
	Location       string
	Description    string
}

// Positions reads every work-history entry from the experience detail page,
// preserving page order. A page without the entity list yields an empty
// slice.
func Positions(html string) ([]RawPosition, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var positions []RawPosition
	doc.Find(selListItem).Each(func(_ int, item *goquery.Selection) {
		title := firstText(item, selItemTitle)
		if title == "" {
			return
		}
		// Subtitle renders as "Company · Employment type".
		company, empType := splitDot(firstText(item, selItemSubtitle))

		positions = append(positions, RawPosition{
			Title:          title,
			Company:        company,
			EmploymentType: empType,
			DateRange:      nthText(item, selItemCaption, 0),
			Location:       nthText(item, selItemCaption, 1),
			Description:    firstText(item, selItemBody),
		})
	})
	return positions, nil
}
