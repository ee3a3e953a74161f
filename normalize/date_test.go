package normalize

import (
	"testing"
	"time"
)

func TestParseDate_MonthYear(t *testing.T) {
	// WHAT: "Jan 2020" and the long form "January 2020" both parse.
	// WHY: LinkedIn renders short month names, but locale experiments have
	// shipped long forms.
	cases := []struct {
		input string
		want  Date
	}{
		{"Jan 2020", Date{Year: 2020, Month: time.January}},
		{"January 2020", Date{Year: 2020, Month: time.January}},
		{"sep 1999", Date{Year: 1999, Month: time.September}},
		{"Dec 2023", Date{Year: 2023, Month: time.December}},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.input)
		if !ok {
			t.Fatalf("ParseDate(%q): not parsed", tc.input)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseDate_YearOnly(t *testing.T) {
	// WHAT: A bare year parses with Month zero.
	// WHY: Education entries frequently carry only years.
	got, ok := ParseDate("2015")
	if !ok {
		t.Fatal("ParseDate(2015): not parsed")
	}
	if got.Year != 2015 || got.Month != 0 {
		t.Errorf("got %+v, want year 2015, month 0", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	// WHAT: Non-dates report ok=false instead of a zero Date that looks real.
	// WHY: Callers use ok to decide between a parsed date and missing data.
	for _, input := range []string{"", "Present", "Foo 2020", "20", "Jan", "Jan 20 2020"} {
		if _, ok := ParseDate(input); ok {
			t.Errorf("ParseDate(%q): unexpectedly parsed", input)
		}
	}
}

func TestParseDateRange_Closed(t *testing.T) {
	// WHAT: "Jan 2020 - Mar 2022 · 2 yrs 3 mos" yields both endpoints and
	// discards the rendered duration suffix.
	// WHY: The suffix is recomputed; trusting it would bake in rounding.
	start, end, ongoing := ParseDateRange("Jan 2020 - Mar 2022 · 2 yrs 3 mos")
	if start == nil || *start != (Date{Year: 2020, Month: time.January}) {
		t.Fatalf("start = %+v", start)
	}
	if end == nil || *end != (Date{Year: 2022, Month: time.March}) {
		t.Fatalf("end = %+v", end)
	}
	if ongoing {
		t.Error("ongoing = true for a closed range")
	}
}

func TestParseDateRange_Present(t *testing.T) {
	// WHAT: A "Present" end marker reports ongoing with a nil end.
	// WHY: Ongoing positions compute duration against now, not an end date.
	start, end, ongoing := ParseDateRange("Mar 2021 - Present · 3 yrs")
	if start == nil || *start != (Date{Year: 2021, Month: time.March}) {
		t.Fatalf("start = %+v", start)
	}
	if end != nil {
		t.Errorf("end = %+v, want nil", end)
	}
	if !ongoing {
		t.Error("ongoing = false for a Present range")
	}
}

func TestParseDateRange_Unparsable(t *testing.T) {
	// WHAT: Garbage endpoints come back nil without panicking.
	// WHY: Markup drift must degrade to missing data, never crash a run.
	start, end, ongoing := ParseDateRange("whenever - someday")
	if start != nil || end != nil || ongoing {
		t.Errorf("got %+v %+v %v, want nil nil false", start, end, ongoing)
	}
}

func TestDurationDays_Closed(t *testing.T) {
	// WHAT: A closed Jan 2020 → Mar 2020 range is 60 days.
	// WHY: Dates anchor to the first of the month; Jan+Feb 2020 = 31+29.
	start := &Date{Year: 2020, Month: time.January}
	end := &Date{Year: 2020, Month: time.March}
	got := DurationDays(start, end, false, time.Now())
	if got == nil || *got != 60 {
		t.Fatalf("DurationDays = %v, want 60", got)
	}
}

func TestDurationDays_Ongoing(t *testing.T) {
	// WHAT: Ongoing ranges run from start to the supplied now.
	// WHY: "Present" has no end date to anchor on.
	start := &Date{Year: 2024, Month: time.January}
	now := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := DurationDays(start, nil, true, now)
	if got == nil || *got != 30 {
		t.Fatalf("DurationDays = %v, want 30", got)
	}
}

func TestDurationDays_NilOnMissingOrInverted(t *testing.T) {
	// WHAT: Missing start, missing end on a finished range, or end-before-start
	// all yield nil.
	// WHY: Durations are non-negative integers or null, never negative.
	now := time.Now()
	start := &Date{Year: 2022, Month: time.May}
	earlier := &Date{Year: 2020, Month: time.May}

	if got := DurationDays(nil, start, false, now); got != nil {
		t.Errorf("nil start: got %v", *got)
	}
	if got := DurationDays(start, nil, false, now); got != nil {
		t.Errorf("nil end, not ongoing: got %v", *got)
	}
	if got := DurationDays(start, earlier, false, now); got != nil {
		t.Errorf("inverted range: got %v", *got)
	}
}
