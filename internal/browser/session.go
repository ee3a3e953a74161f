// Package browser manages the Chrome session behind a profile scrape:
// launch with a fixed flag set, login verification against the injected
// session cookie, filtered page provisioning, and termination that also
// reaps the OS process tree.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Sentinel errors for the session layer. The root package re-exports these
// so callers can branch with errors.Is.
var (
	// ErrSetup is returned when Chrome fails to launch or a page fails to
	// provision. Any partial session is force-terminated first.
	ErrSetup = errors.New("browser: setup failed")

	// ErrSessionExpired is returned when login verification lands back on
	// the login page. The session auto-terminates; a fresh token and a new
	// session are required.
	ErrSessionExpired = errors.New("browser: session expired or invalid")

	// ErrNavigationTimeout is returned when a navigation exceeds the
	// configured timeout. Navigations are never retried.
	ErrNavigationTimeout = errors.New("browser: navigation timeout")
)

const (
	loginURL     = "https://www.linkedin.com/login"
	cookieName   = "li_at"
	cookieDomain = ".www.linkedin.com"

	// Chrome keeps growing its disk cache across long scraping sessions
	// unless capped.
	diskCacheSize = "33554432"
)

// State tracks the session lifecycle. Terminated is terminal: a terminated
// session cannot be reused, a new one must be constructed.
type State int

const (
	StateUninitialized State = iota
	StateLaunched
	StateReady
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLaunched:
		return "launched"
	case StateReady:
		return "ready"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Config configures a Session. Values are set once by the caller; the
// session never mutates them.
type Config struct {
	// SessionToken is the li_at cookie value of an authenticated account.
	SessionToken string

	// UserAgent applied to every provisioned page.
	UserAgent string

	// Timeout bounds every navigation.
	Timeout time.Duration

	// Headful runs Chrome with a visible, maximized window. Default is
	// headless single-process, suited to server environments.
	Headful bool

	Logger *slog.Logger
}

// Session owns at most one Chrome process. Launch, VerifyLoggedIn and
// Terminate serialize on an internal mutex so launch and teardown never
// interleave.
type Session struct {
	cfg Config

	mu      sync.Mutex
	state   State
	browser *rod.Browser
	lnch    *launcher.Launcher
	pid     int
}

// NewSession creates a Session in the Uninitialized state. Call Launch to
// start Chrome.
func NewSession(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Session{cfg: cfg}
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Launch starts one Chrome process with a fixed set of performance and
// stability flags and connects to it. On any failure the partially started
// process is force-cleaned before ErrSetup is returned.
func (s *Session) Launch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return fmt.Errorf("%w: launch from state %s", ErrSetup, s.state)
	}

	l := launcher.New().
		Headless(!s.cfg.Headful).
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Set("disable-gpu").
		Set("mute-audio").
		Set("disable-notifications").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disk-cache-size", diskCacheSize)

	if s.cfg.Headful {
		l = l.Set("start-maximized")
	} else {
		l = l.Set("single-process")
	}

	u, err := l.Launch()
	if err != nil {
		// Force-clean whatever partially started before surfacing.
		l.Kill()
		l.Cleanup()
		s.state = StateTerminated
		return fmt.Errorf("%w: launch chrome: %v", ErrSetup, err)
	}
	s.lnch = l
	s.pid = l.PID()

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		s.terminateLocked()
		return fmt.Errorf("%w: connect: %v", ErrSetup, err)
	}

	s.browser = b
	s.state = StateLaunched
	s.cfg.Logger.Info("browser: launched chrome", "headful", s.cfg.Headful)
	return nil
}

// VerifyLoggedIn opens a page with the session cookie set, navigates to the
// login entry point, and inspects the landing URL. An authenticated session
// is redirected away from /login; landing on /login again means the token
// is expired or invalid, which terminates the session and returns
// ErrSessionExpired. The verification page is closed on both paths.
func (s *Session) VerifyLoggedIn(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLaunched {
		return fmt.Errorf("%w: verify from state %s", ErrSetup, s.state)
	}

	page, err := stealth.Page(s.browser)
	if err != nil {
		s.terminateLocked()
		return fmt.Errorf("%w: verification page: %v", ErrSetup, err)
	}

	landed, err := s.loginLanding(ctx, page)
	if cerr := page.Close(); cerr != nil {
		s.cfg.Logger.Warn("browser: close verification page", "error", cerr)
	}
	if err != nil {
		s.terminateLocked()
		return err
	}

	if strings.Contains(landed, "/login") {
		s.cfg.Logger.Warn("browser: login check failed, token rejected", "landed", landed)
		s.terminateLocked()
		return ErrSessionExpired
	}

	s.state = StateReady
	s.cfg.Logger.Info("browser: login verified", "landed", landed)
	return nil
}

// loginLanding injects the auth cookie, navigates to the login URL and
// returns the URL the browser ended up on.
func (s *Session) loginLanding(ctx context.Context, page *rod.Page) (string, error) {
	if err := setAuthCookie(page, s.cfg.SessionToken); err != nil {
		return "", fmt.Errorf("%w: set cookie: %v", ErrSetup, err)
	}

	navCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	if err := NavigateDOMReady(navCtx, page, loginURL); err != nil {
		return "", err
	}

	info, err := page.Context(navCtx).Info()
	if err != nil {
		return "", fmt.Errorf("%w: page info: %v", ErrSetup, err)
	}
	return info.URL, nil
}

// Terminate shuts the session down: closes any supplied pages first, then
// Chrome gracefully, then force-kills the whole OS process tree. Graceful
// close alone leaves orphaned Chrome children behind, so the tree kill runs
// unconditionally whenever a PID is known. Idempotent; every step is always
// attempted and the first error is reported.
func (s *Session) Terminate(pages ...*rod.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, p := range pages {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil {
			s.cfg.Logger.Warn("browser: close page during terminate", "error", err)
			errs = append(errs, fmt.Errorf("close page: %w", err))
		}
	}
	if err := s.terminateLocked(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Session) terminateLocked() error {
	var errs []error

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			s.cfg.Logger.Warn("browser: graceful close", "error", err)
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		s.browser = nil
	}

	if s.pid > 0 {
		if err := killTree(s.pid); err != nil {
			s.cfg.Logger.Warn("browser: kill process tree", "pid", s.pid, "error", err)
			errs = append(errs, fmt.Errorf("kill process tree: %w", err))
		}
		s.pid = 0
	}
	if s.lnch != nil {
		s.lnch.Cleanup()
		s.lnch = nil
	}

	if s.state != StateTerminated {
		s.cfg.Logger.Info("browser: session terminated")
	}
	s.state = StateTerminated
	return errors.Join(errs...)
}
