package linkprof

import (
	"errors"

	"github.com/hazyhaar/linkprof/internal/browser"
)

// Closed error taxonomy. Callers branch on kind with errors.Is rather than
// on message text.
var (
	// ErrConfiguration is returned by New for invalid input. Fatal, never
	// retried.
	ErrConfiguration = errors.New("linkprof: invalid configuration")

	// ErrInvalidProfileURL is returned by Run before any navigation when
	// the profile URL is empty or outside the target site's domain.
	ErrInvalidProfileURL = errors.New("linkprof: invalid profile url")

	// ErrExtraction is returned when a page's markup could not be read as
	// a document. Individual missing fields are missing data, not errors.
	ErrExtraction = errors.New("linkprof: extraction failed")

	// ErrSetup: Chrome failed to launch or a page failed to provision;
	// the partial session is force-terminated before this surfaces.
	ErrSetup = browser.ErrSetup

	// ErrSessionExpired: login verification landed back on the login
	// page; the session auto-terminated and a fresh token is required.
	ErrSessionExpired = browser.ErrSessionExpired

	// ErrNavigationTimeout: a navigation exceeded the configured timeout.
	// The enclosing run fails; navigations are never retried.
	ErrNavigationTimeout = browser.ErrNavigationTimeout
)
