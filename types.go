package linkprof

import "github.com/hazyhaar/linkprof/normalize"

// Profile is the identity card from the primary profile page.
type Profile struct {
	FullName  string              `json:"full_name"`
	Title     string              `json:"title"`
	Location  *normalize.Location `json:"location,omitempty"`
	About     string              `json:"about,omitempty"`
	AvatarURL string              `json:"avatar_url,omitempty"`
	URL       string              `json:"url"`
}

// Experience is one normalized work-history entry. DurationDays is nil when
// either endpoint of the range could not be parsed.
type Experience struct {
	Title          string              `json:"title"`
	Company        string              `json:"company"`
	EmploymentType string              `json:"employment_type,omitempty"`
	Location       *normalize.Location `json:"location,omitempty"`
	StartDate      *normalize.Date     `json:"start_date,omitempty"`
	EndDate        *normalize.Date     `json:"end_date,omitempty"`
	Ongoing        bool                `json:"ongoing"`
	DurationDays   *int                `json:"duration_days,omitempty"`
	Description    string              `json:"description,omitempty"`
}

// Education is one normalized schooling entry.
type Education struct {
	School       string          `json:"school"`
	Degree       string          `json:"degree,omitempty"`
	Field        string          `json:"field,omitempty"`
	StartDate    *normalize.Date `json:"start_date,omitempty"`
	EndDate      *normalize.Date `json:"end_date,omitempty"`
	DurationDays *int            `json:"duration_days,omitempty"`
}

// Volunteering is one normalized volunteering entry.
type Volunteering struct {
	Role         string          `json:"role"`
	Organization string          `json:"organization,omitempty"`
	StartDate    *normalize.Date `json:"start_date,omitempty"`
	EndDate      *normalize.Date `json:"end_date,omitempty"`
	Ongoing      bool            `json:"ongoing"`
	DurationDays *int            `json:"duration_days,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// Skill is one normalized skill entry.
type Skill struct {
	Name string `json:"name"`
}

// Result is the aggregate of one complete run. Each list preserves source
// page order. A Result is only produced when every sub-extraction
// succeeded; partial failure never yields a partial aggregate.
type Result struct {
	Profile      Profile        `json:"profile"`
	Experiences  []Experience   `json:"experiences"`
	Education    []Education    `json:"education"`
	Volunteering []Volunteering `json:"volunteering"`
	Skills       []Skill        `json:"skills"`
}
