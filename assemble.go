package linkprof

import (
	"time"

	"github.com/hazyhaar/linkprof/internal/extract"
	"github.com/hazyhaar/linkprof/normalize"
)

// Glue between the raw extraction records and the typed entities: clean the
// text, parse the date ranges, and recompute durations instead of trusting
// the rendered "2 yrs 3 mos" captions.

func toProfile(raw extract.RawProfile, profileURL string) Profile {
	return Profile{
		FullName:  normalize.CleanText(raw.FullName),
		Title:     normalize.CleanText(raw.Headline),
		Location:  normalize.ParseLocation(raw.Location),
		About:     normalize.CleanText(raw.About),
		AvatarURL: raw.AvatarURL,
		URL:       profileURL,
	}
}

func toExperiences(raws []extract.RawPosition, now time.Time) []Experience {
	experiences := make([]Experience, 0, len(raws))
	for _, r := range raws {
		start, end, ongoing := normalize.ParseDateRange(r.DateRange)
		experiences = append(experiences, Experience{
			Title:          normalize.CleanText(r.Title),
			Company:        normalize.CleanText(r.Company),
			EmploymentType: normalize.CleanText(r.EmploymentType),
			Location:       normalize.ParseLocation(r.Location),
			StartDate:      start,
			EndDate:        end,
			Ongoing:        ongoing,
			DurationDays:   normalize.DurationDays(start, end, ongoing, now),
			Description:    normalize.CleanText(r.Description),
		})
	}
	return experiences
}

func toEducation(raws []extract.RawEducation, now time.Time) []Education {
	entries := make([]Education, 0, len(raws))
	for _, r := range raws {
		start, end, ongoing := normalize.ParseDateRange(r.DateRange)
		entries = append(entries, Education{
			School:       normalize.CleanText(r.School),
			Degree:       normalize.CleanText(r.Degree),
			Field:        normalize.CleanText(r.Field),
			StartDate:    start,
			EndDate:      end,
			DurationDays: normalize.DurationDays(start, end, ongoing, now),
		})
	}
	return entries
}

func toVolunteering(raws []extract.RawVolunteering, now time.Time) []Volunteering {
	entries := make([]Volunteering, 0, len(raws))
	for _, r := range raws {
		start, end, ongoing := normalize.ParseDateRange(r.DateRange)
		entries = append(entries, Volunteering{
			Role:         normalize.CleanText(r.Role),
			Organization: normalize.CleanText(r.Organization),
			StartDate:    start,
			EndDate:      end,
			Ongoing:      ongoing,
			DurationDays: normalize.DurationDays(start, end, ongoing, now),
			Description:  normalize.CleanText(r.Description),
		})
	}
	return entries
}

func toSkills(raws []extract.RawSkill) []Skill {
	skills := make([]Skill, 0, len(raws))
	for _, r := range raws {
		skills = append(skills, Skill{Name: normalize.CleanText(r.Name)})
	}
	return skills
}
