package linkprof

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestValidateProfileURL(t *testing.T) {
	// WHAT: Only non-empty http(s) URLs on a linkedin.com host pass.
	// WHY: Run must reject bad input before any navigation happens.
	cases := []struct {
		url string
		ok  bool
	}{
		{"https://www.linkedin.com/in/example", true},
		{"https://linkedin.com/in/example", true},
		{"http://ca.linkedin.com/in/example", true},
		{"", false},
		{"ftp://www.linkedin.com/in/example", false},
		{"https://example.com/in/example", false},
		{"https://evil-linkedin.com/in/example", false},
		{"https://linkedin.com.evil.com/in/example", false},
	}
	for _, tc := range cases {
		err := validateProfileURL(tc.url)
		if tc.ok && err != nil {
			t.Errorf("validateProfileURL(%q) = %v, want nil", tc.url, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidProfileURL) {
			t.Errorf("validateProfileURL(%q) = %v, want ErrInvalidProfileURL", tc.url, err)
		}
	}
}

func TestRun_RequiresSetup(t *testing.T) {
	// WHAT: Run before a successful Setup fails with ErrSetup instead of
	// silently launching a browser.
	// WHY: Ready is the only state extraction runs may start from; a
	// terminated or absent session must not self-heal.
	s, err := New(Config{SessionToken: "tok"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Run(context.Background(), "https://www.linkedin.com/in/example")
	if !errors.Is(err, ErrSetup) {
		t.Fatalf("err = %v, want ErrSetup", err)
	}
}

func TestRun_ValidatesBeforeSession(t *testing.T) {
	// WHAT: A bad URL is rejected with ErrInvalidProfileURL even when no
	// session exists.
	// WHY: Input validation strictly precedes any session interaction.
	s, err := New(Config{SessionToken: "tok"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Run(context.Background(), "https://example.com/in/foo")
	if !errors.Is(err, ErrInvalidProfileURL) {
		t.Fatalf("err = %v, want ErrInvalidProfileURL", err)
	}
}

func TestClose_BeforeSetup(t *testing.T) {
	// WHAT: Close without a session is a no-op.
	// WHY: Callers defer Close immediately after New.
	s, err := New(Config{SessionToken: "tok"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestAwaitAll_AllSucceed(t *testing.T) {
	// WHAT: awaitAll returns nil when every task succeeds.
	// WHY: The happy path of the detail-page fan-out.
	err := awaitAll(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestAwaitAll_FailFast(t *testing.T) {
	// WHAT: One failing task fails the join and cancels the shared context
	// of the others, even when they already produced data.
	// WHY: Partial results are discarded, not returned — the aggregate is
	// all-or-nothing.
	boom := errors.New("navigation timeout")
	sawCancel := make(chan struct{})

	err := awaitAll(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				close(sawCancel)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return errors.New("sibling was not cancelled")
			}
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the first task's error", err)
	}
	select {
	case <-sawCancel:
	default:
		t.Error("sibling task did not observe cancellation")
	}
}

func TestJoinURL(t *testing.T) {
	// WHAT: Detail sub-paths extend the URL path without doubled slashes,
	// and a query string or fragment on the profile URL is dropped rather
	// than having the sub-path appended after it.
	// WHY: Profile URLs arrive with trailing slashes, tracking parameters
	// like ?originalSubdomain=ca, and fragments; a sub-path embedded in the
	// query navigates the fan-out to the wrong document.
	cases := []struct {
		base, sub, want string
	}{
		{"https://www.linkedin.com/in/example", "details/skills/", "https://www.linkedin.com/in/example/details/skills/"},
		{"https://www.linkedin.com/in/example/", "details/skills/", "https://www.linkedin.com/in/example/details/skills/"},
		{"https://www.linkedin.com/in/example?originalSubdomain=ca", "details/experience/", "https://www.linkedin.com/in/example/details/experience/"},
		{"https://www.linkedin.com/in/example/?trk=feed", "details/education/", "https://www.linkedin.com/in/example/details/education/"},
		{"https://www.linkedin.com/in/example#section", "details/skills/", "https://www.linkedin.com/in/example/details/skills/"},
	}
	for _, tc := range cases {
		if got := joinURL(tc.base, tc.sub); got != tc.want {
			t.Errorf("joinURL(%q, %q) = %q, want %q", tc.base, tc.sub, got, tc.want)
		}
	}
}
