package extract

// RawProfile is the identity card scraped off the primary profile page.
type RawProfile struct {
	FullName  string
	Headline  string
	Location  string
	About     string
	AvatarURL string
}

// Profile reads the top-card identity fields from the primary page markup.
// Fields whose selectors no longer match come back empty.
func Profile(html string) (RawProfile, error) {
	doc, err := parse(html)
	if err != nil {
		return RawProfile{}, err
	}

	p := RawProfile{
		FullName: firstText(doc.Selection, `main h1`),
		Headline: firstText(doc.Selection, `div.text-body-medium.break-words`),
		Location: firstText(doc.Selection, `span.text-body-small.inline.t-black--light.break-words`),
	}

	if img := doc.Find(`img.pv-top-card-profile-picture__image`).First(); img.Length() > 0 {
		p.AvatarURL, _ = img.Attr("src")
	}

	// The About section has no stable class of its own; anchor on its
	// in-page id and walk up to the enclosing section.
	if anchor := doc.Find(`div#about`).First(); anchor.Length() > 0 {
		p.About = firstText(anchor.Closest("section"), selItemBody)
	}

	return p, nil
}
