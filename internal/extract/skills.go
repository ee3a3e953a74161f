package extract

import "github.com/PuerkitoBio/goquery"

// RawSkill is one skill entry as scraped from the skills detail page.
type RawSkill struct {
	Name string
}

// Skills reads every skill name from the skills detail page, preserving
// page order.
func Skills(html string) ([]RawSkill, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var skills []RawSkill
	doc.Find(selListItem).Each(func(_ int, item *goquery.Selection) {
		name := firstText(item, selItemTitle)
		if name == "" {
			return
		}
		skills = append(skills, RawSkill{Name: name})
	})
	return skills, nil
}
