package extract

import "github.com/PuerkitoBio/goquery"

// RawVolunteering is one volunteering entry as scraped from the primary
// profile page.
type RawVolunteering struct {
	Role         string
	Organization string
	DateRange    string
	Description  string
}

// Volunteering reads the volunteering section off the primary page markup.
// Profiles without the section yield an empty slice. The section has no
// stable class; it is anchored on its in-page id.
func Volunteering(html string) ([]RawVolunteering, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	anchor := doc.Find(`div#volunteering_experience`).First()
	if anchor.Length() == 0 {
		return nil, nil
	}

	var entries []RawVolunteering
	anchor.Closest("section").Find(selListItem).Each(func(_ int, item *goquery.Selection) {
		role := firstText(item, selItemTitle)
		if role == "" {
			return
		}
		entries = append(entries, RawVolunteering{
			Role:         role,
			Organization: firstText(item, selItemSubtitle),
			DateRange:    nthText(item, selItemCaption, 0),
			Description:  firstText(item, selItemBody),
		})
	})
	return entries, nil
}
