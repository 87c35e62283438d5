// Package browser manages the process-wide headless browsing session used
// for HTML acquisition. The underlying Chrome process is started lazily on
// first use, shared across acquisitions, and torn down only on shutdown.
// Each render opens its own tab and always closes it before returning.
package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/custodia-labs/ragdocs/internal/core/domain"
	"github.com/custodia-labs/ragdocs/internal/core/ports/driven"
	"github.com/custodia-labs/ragdocs/internal/logger"
)

// Ensure Manager implements the interface.
var _ driven.Browser = (*Manager)(nil)

// Default configuration values.
const (
	// DefaultNavigationTimeout bounds one page load and render.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultSettleDelay is how long to wait after the document is ready
	// for late script-driven content, approximating a network-idle wait.
	DefaultSettleDelay = 2 * time.Second
)

// Config holds configuration for the browser manager.
type Config struct {
	// NavigationTimeout bounds one page load (default: 30s).
	NavigationTimeout time.Duration

	// SettleDelay is the post-load settle wait (default: 2s).
	SettleDelay time.Duration
}

// Manager owns the shared browser handle. Creation is guarded so that
// concurrent first renders start exactly one browser process.
type Manager struct {
	mu          sync.Mutex
	allocCtx    context.Context
	allocCancel context.CancelFunc
	browserCtx  context.Context
	cancel      context.CancelFunc
	started     bool
	closed      bool

	navTimeout  time.Duration
	settleDelay time.Duration
}

// NewManager creates a browser manager. No browser process is started until
// the first HTML call.
func NewManager(cfg Config) *Manager {
	if cfg.NavigationTimeout == 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	return &Manager{
		navTimeout:  cfg.NavigationTimeout,
		settleDelay: cfg.SettleDelay,
	}
}

// session returns the shared browser context, starting the browser on first
// use.
func (m *Manager) session() (context.Context, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("%w: browser session is closed", domain.ErrFetch)
	}
	if m.started {
		return m.browserCtx, nil
	}

	logger.Debug("Starting headless browser")
	m.allocCtx, m.allocCancel = chromedp.NewExecAllocator(
		context.Background(), chromedp.DefaultExecAllocatorOptions[:]...)
	m.browserCtx, m.cancel = chromedp.NewContext(m.allocCtx)

	// Run a no-op to launch the process now, so a missing Chrome binary
	// surfaces here instead of mid-navigation.
	if err := chromedp.Run(m.browserCtx); err != nil {
		m.cancel()
		m.allocCancel()
		m.browserCtx = nil
		return nil, fmt.Errorf("%w: starting browser: %v", domain.ErrFetch, err)
	}

	m.started = true
	return m.browserCtx, nil
}

// HTML navigates to the URL in a fresh tab and returns the rendered HTML.
// The tab is closed before returning, whether or not navigation succeeded.
func (m *Manager) HTML(ctx context.Context, url string) (string, error) {
	session, err := m.session()
	if err != nil {
		return "", err
	}

	tabCtx, closeTab := chromedp.NewContext(session)
	defer closeTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, m.navTimeout)
	defer cancelTimeout()

	// Honour caller cancellation alongside the tab's own timeout.
	go func() {
		select {
		case <-ctx.Done():
			cancelTimeout()
		case <-tabCtx.Done():
		}
	}()

	var html string
	err = chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(m.settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("%w: navigating to %s: %v", domain.ErrFetch, url, err)
	}

	return html, nil
}

// Close tears down the browser session. Subsequent HTML calls fail.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	if m.started {
		logger.Debug("Closing headless browser")
		m.cancel()
		m.allocCancel()
	}
	return nil
}
