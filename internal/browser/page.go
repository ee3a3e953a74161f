package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

const (
	viewportWidth  = 1920
	viewportHeight = 1080
)

// blockedTypes are resource categories aborted on every provisioned page.
// Stylesheets stay enabled: the extractors depend on laid-out markup.
var blockedTypes = map[proto.NetworkResourceType]bool{
	proto.NetworkResourceTypeImage:     true,
	proto.NetworkResourceTypeMedia:     true,
	proto.NetworkResourceTypeFont:      true,
	proto.NetworkResourceTypeTextTrack: true,
	proto.NetworkResourceTypeManifest:  true,
}

// deniedHosts are tracking endpoints aborted regardless of resource type.
var deniedHosts = []string{
	"ads.linkedin.com",
	"px.ads.linkedin.com",
	"google-analytics.com",
	"googletagmanager.com",
	"doubleclick.net",
	"bat.bing.com",
}

// allowedHostSuffixes are the target site's own hostnames. Cross-origin
// requests to anything else are aborted.
var allowedHostSuffixes = []string{
	"linkedin.com",
	"licdn.com", // LinkedIn's static-asset CDN
}

// blockRequest is the abort/allow decision for one intercepted request.
// Pure so the policy is testable without a browser.
func blockRequest(resType proto.NetworkResourceType, reqURL *url.URL) bool {
	if blockedTypes[resType] {
		return true
	}
	host := strings.ToLower(reqURL.Hostname())
	for _, d := range deniedHosts {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	for _, a := range allowedHostSuffixes {
		if host == a || strings.HasSuffix(host, "."+a) {
			return false
		}
	}
	return true
}

// NewPage provisions a disposable page on the session's browser: stealth
// scripts, CSP bypass, active lifecycle state, the request-interception
// policy, viewport, user agent, and the auth cookie. The caller owns the
// page and must close it on every exit path.
//
// A half-configured page is treated as a sign the session is unhealthy: any
// provisioning failure terminates the whole session before ErrSetup is
// returned.
func NewPage(s *Session) (*rod.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return nil, fmt.Errorf("%w: create page from state %s", ErrSetup, s.state)
	}

	page, err := stealth.Page(s.browser)
	if err != nil {
		s.terminateLocked()
		return nil, fmt.Errorf("%w: create page: %v", ErrSetup, err)
	}

	if err := provision(page, s.cfg); err != nil {
		s.cfg.Logger.Error("browser: page provisioning failed", "error", err)
		s.terminateLocked()
		return nil, fmt.Errorf("%w: provision page: %v", ErrSetup, err)
	}
	return page, nil
}

func provision(page *rod.Page, cfg Config) error {
	// Extraction scripts evaluate inside the document; the site's CSP
	// would reject them without the bypass.
	if err := (proto.PageSetBypassCSP{Enabled: true}).Call(page); err != nil {
		return fmt.Errorf("bypass csp: %w", err)
	}

	// Keep the tab active so the engine never throttles a backgrounded
	// page mid-extraction.
	if err := (proto.PageSetWebLifecycleState{
		State: proto.PageSetWebLifecycleStateStateActive,
	}).Call(page); err != nil {
		return fmt.Errorf("lifecycle state: %w", err)
	}

	router := page.HijackRequests()
	router.MustAdd("*", func(h *rod.Hijack) {
		if blockRequest(h.Request.Type(), h.Request.URL()) {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	go router.Run()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: cfg.UserAgent,
	}); err != nil {
		return fmt.Errorf("user agent: %w", err)
	}

	if err := setAuthCookie(page, cfg.SessionToken); err != nil {
		return fmt.Errorf("auth cookie: %w", err)
	}
	return nil
}

func setAuthCookie(page *rod.Page, token string) error {
	return page.SetCookies([]*proto.NetworkCookieParam{{
		Name:     cookieName,
		Value:    token,
		Domain:   cookieDomain,
		Path:     "/",
		Secure:   true,
		HTTPOnly: true,
	}})
}

// NavigateDOMReady navigates and waits only for initial DOM construction.
// Waiting for network idle would hang on the site's long-polling
// connections. A context deadline maps to ErrNavigationTimeout.
func NavigateDOMReady(ctx context.Context, page *rod.Page, pageURL string) error {
	p := page.Context(ctx)
	wait := p.WaitEvent(&proto.PageDomContentEventFired{})
	if err := p.Navigate(pageURL); err != nil {
		return navErr(ctx, pageURL, err)
	}
	wait()
	if ctx.Err() != nil {
		return navErr(ctx, pageURL, ctx.Err())
	}
	return nil
}

// NavigateIdle navigates and waits for the load event plus a quiet network
// window. Detail pages are self-contained documents, so idle semantics are
// safe there and guarantee lazy sections have fetched their data.
func NavigateIdle(ctx context.Context, page *rod.Page, pageURL string) error {
	p := page.Context(ctx)
	if err := p.Navigate(pageURL); err != nil {
		return navErr(ctx, pageURL, err)
	}
	if err := p.WaitLoad(); err != nil {
		return navErr(ctx, pageURL, err)
	}
	wait := p.WaitRequestIdle(300*time.Millisecond, nil, nil, nil)
	wait()
	if ctx.Err() != nil {
		return navErr(ctx, pageURL, ctx.Err())
	}
	return nil
}

// navErr maps a failed navigation onto the error taxonomy. Only an expired
// deadline is a navigation timeout; caller cancellation (an interrupt, a
// failed sibling in the fan-out) stays context.Canceled.
func navErr(ctx context.Context, pageURL string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrNavigationTimeout, pageURL)
	case ctx.Err() != nil:
		return fmt.Errorf("browser: navigate %s: %w", pageURL, ctx.Err())
	default:
		return fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
}

// scrollScript walks the page to the bottom in fixed steps so lazy-loaded
// sections render before extraction reads the DOM.
const scrollScript = `() => new Promise(resolve => {
	const step = 500;
	let scrolled = 0;
	const timer = setInterval(() => {
		const height = document.body.scrollHeight;
		window.scrollBy(0, step);
		scrolled += step;
		if (scrolled >= height) {
			clearInterval(timer);
			resolve(scrolled);
		}
	}, 100);
})`

// ScrollToBottom triggers progressive scroll-to-bottom on the page and
// returns once the bottom is reached or the context expires. The stepper
// chases document.body.scrollHeight, which the site can keep growing, so
// callers must pass a bounded context.
func ScrollToBottom(ctx context.Context, page *rod.Page) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("browser: scroll to bottom: %w", err)
	}
	if _, err := page.Context(ctx).Eval(scrollScript); err != nil {
		return fmt.Errorf("browser: scroll to bottom: %w", err)
	}
	return nil
}

// HTML snapshots the page's current markup for the extractors.
func HTML(ctx context.Context, page *rod.Page) (string, error) {
	html, err := page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("browser: read page html: %w", err)
	}
	return html, nil
}
