package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date as LinkedIn renders it: a year, optionally with a
// month. Month is 0 when the source text gave only a year.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month,omitempty"`
}

// Time anchors the date to the first day of its month (January when the
// month is unknown), midnight UTC. Used for duration arithmetic.
func (d Date) Time() time.Time {
	m := d.Month
	if m == 0 {
		m = time.January
	}
	return time.Date(d.Year, m, 1, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	if d.Month == 0 {
		return strconv.Itoa(d.Year)
	}
	return fmt.Sprintf("%s %d", d.Month.String()[:3], d.Year)
}

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate parses a LinkedIn textual date ("Jan 2020", "January 2020",
// "2020") into a Date. The second return is false when the text does not
// denote a date.
func ParseDate(s string) (Date, bool) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		year, err := strconv.Atoi(fields[0])
		if err != nil || year < 1000 || year > 9999 {
			return Date{}, false
		}
		return Date{Year: year}, true
	case 2:
		key := strings.ToLower(fields[0])
		if len(key) > 3 {
			key = key[:3]
		}
		month, ok := months[key]
		if !ok {
			return Date{}, false
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil || year < 1000 || year > 9999 {
			return Date{}, false
		}
		return Date{Year: year, Month: month}, true
	}
	return Date{}, false
}

// ongoingMarkers are the end-of-range tokens that denote a position still
// held today.
var ongoingMarkers = map[string]bool{
	"present": true,
	"current": true,
}

// ParseDateRange splits a rendered date range ("Jan 2020 - Mar 2022 ·
// 2 yrs 3 mos", "2019 - Present") into its endpoints. The duration suffix
// after "·" is recomputed rather than trusted, so it is discarded here.
// Unparsable endpoints come back nil; ongoing reports a "Present" end marker.
func ParseDateRange(s string) (start, end *Date, ongoing bool) {
	if i := strings.IndexRune(s, '·'); i >= 0 {
		s = s[:i]
	}
	parts := strings.SplitN(strings.ReplaceAll(s, "–", "-"), "-", 2)

	if d, ok := ParseDate(parts[0]); ok {
		start = &d
	}
	if len(parts) < 2 {
		return start, nil, false
	}
	tail := strings.ToLower(strings.TrimSpace(parts[1]))
	if ongoingMarkers[tail] {
		return start, nil, true
	}
	if d, ok := ParseDate(parts[1]); ok {
		end = &d
	}
	return start, end, false
}

// DurationDays computes the whole number of days covered by a date range.
// Ongoing ranges run from start to now. Returns nil when the range cannot
// be computed: missing start, missing end on a finished range, or endpoints
// that contradict each other (end before start).
func DurationDays(start, end *Date, ongoing bool, now time.Time) *int {
	if start == nil {
		return nil
	}
	var to time.Time
	switch {
	case ongoing:
		to = now
	case end != nil:
		to = end.Time()
	default:
		return nil
	}
	days := int(to.Sub(start.Time()).Hours() / 24)
	if days < 0 {
		return nil
	}
	return &days
}
