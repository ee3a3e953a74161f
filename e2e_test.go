package linkprof

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestRun_Live drives a full scrape against the live site. It needs a real
// authenticated cookie and a local Chrome, so it only runs when explicitly
// requested:
//
//	LINKPROF_E2E=1 LI_AT=<cookie> go test -run TestRun_Live -timeout 5m
func TestRun_Live(t *testing.T) {
	if os.Getenv("LINKPROF_E2E") == "" {
		t.Skip("set LINKPROF_E2E=1 to run the live end-to-end test")
	}
	token := os.Getenv("LI_AT")
	if token == "" {
		t.Skip("set LI_AT to an authenticated session cookie")
	}
	profileURL := os.Getenv("LINKPROF_E2E_URL")
	if profileURL == "" {
		profileURL = "https://www.linkedin.com/in/williamhgates"
	}

	s, err := New(Config{SessionToken: token, Timeout: 30 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	if err := s.Setup(ctx); err != nil {
		t.Fatalf("setup: %v", err)
	}

	result, err := s.Run(ctx, profileURL)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Profile.FullName == "" {
		t.Error("profile name is empty")
	}
	if len(result.Experiences) == 0 {
		t.Error("no experiences extracted")
	}
	for i, e := range result.Experiences {
		if e.DurationDays != nil && *e.DurationDays < 0 {
			t.Errorf("experience[%d]: negative duration %d", i, *e.DurationDays)
		}
	}
}
