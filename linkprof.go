// Package linkprof extracts structured professional-profile data (identity,
// work history, education, volunteering, skills) from LinkedIn's rendered
// pages through an authenticated Chrome session, driven by a pre-obtained
// li_at session cookie instead of an API.
//
// The usual call sequence is New → Setup → Run → Close. Run drives a fixed
// protocol: the primary profile page is navigated, scrolled to the bottom
// and read sequentially, then the experience, education and skills detail
// pages are fetched concurrently, each on its own disposable page. The
// aggregate is all-or-nothing — any sub-extraction failure discards every
// partial result and terminates the session.
package linkprof

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/linkprof/idgen"
	"github.com/hazyhaar/linkprof/internal/browser"
	"github.com/hazyhaar/linkprof/internal/extract"
)

// Detail sub-paths fanned out concurrently by Run. Each is an independent
// document under the profile URL.
const (
	subPathExperience = "details/experience/"
	subPathEducation  = "details/education/"
	subPathSkills     = "details/skills/"
)

// Scraper extracts one profile per Run call. Not safe for concurrent Run
// calls on the same value: the underlying browser session is a single
// shared resource.
type Scraper struct {
	cfg     Config
	log     *slog.Logger
	session *browser.Session
	newID   idgen.Generator
}

// New validates the configuration and constructs a Scraper. No browser is
// launched yet; call Setup for that. Invalid configuration fails here, never
// at use time.
func New(cfg Config) (*Scraper, error) {
	if err := cfg.validate(); err != nil {
		slog.Error("scrape: construction failed", "error", err)
		return nil, err
	}
	cfg.defaults()
	return &Scraper{
		cfg:   cfg,
		log:   cfg.Logger,
		newID: idgen.Prefixed("run_", idgen.Default),
	}, nil
}

// Setup launches Chrome and verifies the session token by navigating to the
// login entry point. On any failure the partial session is terminated
// before the error is returned. After a successful Setup the session is
// ready for Run.
func (s *Scraper) Setup(ctx context.Context) error {
	if s.session != nil && s.session.State() == browser.StateReady {
		return nil
	}

	sess := browser.NewSession(browser.Config{
		SessionToken: s.cfg.SessionToken,
		UserAgent:    s.cfg.UserAgent,
		Timeout:      s.cfg.Timeout,
		Headful:      s.cfg.Headful,
		Logger:       s.log,
	})

	if err := sess.Launch(); err != nil {
		s.log.Error("scrape: setup failed", "phase", "launch", "error", err)
		return err
	}
	if err := sess.VerifyLoggedIn(ctx); err != nil {
		// The session already terminated itself on verification failure.
		s.log.Error("scrape: setup failed", "phase", "login-check", "error", err)
		return err
	}

	s.session = sess
	s.log.Info("scrape: session ready")
	return nil
}

// Run extracts one complete profile. Requires a prior successful Setup.
// Any failure forces full session termination before the error is
// returned; there is no partial-success result. With KeepAlive the session
// survives a successful run and a subsequent Run reuses it.
func (s *Scraper) Run(ctx context.Context, profileURL string) (*Result, error) {
	if err := validateProfileURL(profileURL); err != nil {
		s.log.Error("scrape: run rejected", "phase", "validation", "url", profileURL, "error", err)
		return nil, err
	}
	if s.session == nil || s.session.State() != browser.StateReady {
		err := fmt.Errorf("%w: session is not ready, call Setup first", ErrSetup)
		s.log.Error("scrape: run rejected", "phase", "run", "error", err)
		return nil, err
	}

	log := s.log.With("run", s.newID(), "url", profileURL)

	result, err := s.run(ctx, log, profileURL)
	if err != nil {
		log.Error("scrape: run failed", "error", err)
		if terr := s.session.Terminate(); terr != nil {
			log.Warn("scrape: termination after failed run", "error", terr)
		}
		return nil, err
	}

	if !s.cfg.KeepAlive {
		if terr := s.session.Terminate(); terr != nil {
			log.Warn("scrape: termination after run", "error", terr)
		}
	}
	log.Info("scrape: run complete",
		"experiences", len(result.Experiences),
		"education", len(result.Education),
		"volunteering", len(result.Volunteering),
		"skills", len(result.Skills))
	return result, nil
}

func (s *Scraper) run(ctx context.Context, log *slog.Logger, profileURL string) (*Result, error) {
	primary, err := browser.NewPage(s.session)
	if err != nil {
		return nil, err
	}
	// The primary page is closed on every exit path. Failure paths also
	// terminate the session afterwards, which tolerates a second close.
	defer primary.Close()

	navCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	err = browser.NavigateDOMReady(navCtx, primary, profileURL)
	cancel()
	if err != nil {
		return nil, err
	}

	// Lazy-loaded sections only render once scrolled into view. Nothing
	// reads the DOM before this completes. The stepper chases a growing
	// scrollHeight, so it gets the same deadline as a navigation.
	scrollCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	err = browser.ScrollToBottom(scrollCtx, primary)
	cancel()
	if err != nil {
		return nil, err
	}

	primaryHTML, err := browser.HTML(ctx, primary)
	if err != nil {
		return nil, err
	}

	rawProfile, err := extract.Profile(primaryHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: profile: %v", ErrExtraction, err)
	}
	rawVolunteering, err := extract.Volunteering(primaryHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: volunteering: %v", ErrExtraction, err)
	}
	log.Debug("scrape: primary page extracted")

	// The detail pages are independent documents: fan out, fail fast on
	// the first error, and join before assembling. Each task writes only
	// its own slot, so slot assignment is deterministic regardless of
	// completion order.
	var (
		rawPositions []extract.RawPosition
		rawEducation []extract.RawEducation
		rawSkills    []extract.RawSkill
	)
	err = awaitAll(ctx,
		func(ctx context.Context) error {
			html, err := s.detailHTML(ctx, profileURL, subPathExperience)
			if err != nil {
				return err
			}
			if rawPositions, err = extract.Positions(html); err != nil {
				return fmt.Errorf("%w: experience: %v", ErrExtraction, err)
			}
			return nil
		},
		func(ctx context.Context) error {
			html, err := s.detailHTML(ctx, profileURL, subPathEducation)
			if err != nil {
				return err
			}
			if rawEducation, err = extract.Education(html); err != nil {
				return fmt.Errorf("%w: education: %v", ErrExtraction, err)
			}
			return nil
		},
		func(ctx context.Context) error {
			html, err := s.detailHTML(ctx, profileURL, subPathSkills)
			if err != nil {
				return err
			}
			if rawSkills, err = extract.Skills(html); err != nil {
				return fmt.Errorf("%w: skills: %v", ErrExtraction, err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	log.Debug("scrape: detail pages extracted")

	now := time.Now()
	return &Result{
		Profile:      toProfile(rawProfile, profileURL),
		Experiences:  toExperiences(rawPositions, now),
		Education:    toEducation(rawEducation, now),
		Volunteering: toVolunteering(rawVolunteering, now),
		Skills:       toSkills(rawSkills),
	}, nil
}

// detailHTML opens a fresh page, navigates to a detail sub-path with
// network-idle semantics, snapshots the markup and closes the page.
func (s *Scraper) detailHTML(ctx context.Context, base, sub string) (string, error) {
	page, err := browser.NewPage(s.session)
	if err != nil {
		return "", err
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := browser.NavigateIdle(navCtx, page, joinURL(base, sub)); err != nil {
		return "", err
	}
	return browser.HTML(navCtx, page)
}

// Close terminates the session and the browser process tree. Idempotent;
// safe to call whether or not Setup or Run succeeded.
func (s *Scraper) Close() error {
	if s.session == nil {
		return nil
	}
	return s.session.Terminate()
}

// awaitAll runs the tasks concurrently and waits for all of them, failing
// fast: the first error cancels the shared context of the others and is
// returned.
func awaitAll(ctx context.Context, tasks ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error { return task(gctx) })
	}
	return g.Wait()
}

// validateProfileURL accepts only non-empty URLs within the target site's
// domain, before any navigation happens.
func validateProfileURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidProfileURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfileURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidProfileURL, u.Scheme)
	}
	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return fmt.Errorf("%w: host %q is not a linkedin.com domain", ErrInvalidProfileURL, host)
	}
	return nil
}

// joinURL appends a detail sub-path to the profile URL's path component.
// Query and fragment are dropped: the sub-path must extend the path, not
// the query string, and the detail documents take no parameters.
func joinURL(base, sub string) string {
	u, err := url.Parse(base)
	if err != nil {
		// Run validated the URL already; unreachable in practice.
		return strings.TrimRight(base, "/") + "/" + sub
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + sub
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
