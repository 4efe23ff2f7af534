package browser

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pilot/pkg/config"
	"github.com/entrhq/pilot/pkg/logging"
)

// State is the explicit lifecycle state of a session.
type State string

const (
	// StateUninitialized means no browser has been acquired yet, or a
	// prior acquisition failed and the next action may retry.
	StateUninitialized State = "uninitialized"

	// StateLaunching means acquisition is in progress.
	StateLaunching State = "launching"

	// StateReady means the browser and its single page are live.
	StateReady State = "ready"

	// StateClosed means the session was explicitly closed. The next
	// EnsureReady acquires a fresh browser.
	StateClosed State = "closed"
)

// chromiumFlags are passed on every launch. The sandbox flags are
// required in containerized execution environments where the Chromium
// sandbox cannot start.
var chromiumFlags = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
}

// handles bundles everything acquired for one launch cycle. release
// tears all of it down best-effort, in page-out order.
type handles struct {
	page    playwright.Page
	release func()
}

// launcher acquires the browser process, context, and page for a
// session. Swapped for a fake in tests so the state machine can be
// exercised without a real browser.
type launcher interface {
	Acquire(execPath string, cfg *config.Config) (*handles, error)
}

// Session owns one browser process and its single active page, with an
// explicit lifecycle. At most one page is active at a time; the page
// handle is valid only in StateReady.
//
// Actions are expected to arrive one at a time. The mutex protects the
// lifecycle state against a concurrent Close from a shutdown path, not
// against overlapping actions on the page itself.
type Session struct {
	mu           sync.Mutex
	state        State
	handles      *handles
	locator      Locator
	launcher     launcher
	cfg          *config.Config
	logger       *logging.Logger
	acquisitions int
}

// NewSession creates a session in StateUninitialized. Nothing is
// launched until the first EnsureReady call.
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	logger, _ := logging.NewLogger("session")

	return &Session{
		state:    StateUninitialized,
		locator:  &ChromiumLocator{ExtraCandidates: []string{cfg.ExecutablePath}},
		launcher: &playwrightLauncher{},
		cfg:      cfg,
		logger:   logger,
	}
}

// Config returns the session's configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Acquisitions returns how many times a browser has been acquired over
// the session's lifetime.
func (s *Session) Acquisitions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquisitions
}

// EnsureReady acquires the browser and page if they are not already
// live. Idempotent: when the session is ready this returns immediately,
// so the expensive launch happens at most once per close cycle. On any
// acquisition failure partial resources are released and the session
// reverts to StateUninitialized so a later action can retry.
func (s *Session) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return wrapError(KindCancelled, err, "session acquisition cancelled")
	}

	s.state = StateLaunching
	s.logger.Infof("acquiring browser (state: launching)")

	execPath, err := s.locator.Locate()
	if err != nil {
		s.state = StateUninitialized
		return err
	}
	s.logger.Debugf("using browser executable: %s", execPath)

	h, err := s.acquire(ctx, execPath)
	if err != nil {
		s.state = StateUninitialized
		if KindOf(err) == KindCancelled {
			return err
		}
		return wrapError(KindLaunchFailure, err, "failed to launch browser session")
	}

	s.handles = h
	s.acquisitions++
	s.state = StateReady
	s.logger.Infof("browser ready (acquisition #%d)", s.acquisitions)
	return nil
}

// acquire runs the launcher on a goroutine so a cancelled context does
// not leave the caller stuck behind a hanging launch. An abandoned
// acquisition is released as soon as it completes.
func (s *Session) acquire(ctx context.Context, execPath string) (*handles, error) {
	type outcome struct {
		h   *handles
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		h, err := s.launcher.Acquire(execPath, s.cfg)
		done <- outcome{h, err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if out := <-done; out.h != nil {
				out.h.release()
			}
		}()
		return nil, wrapError(KindCancelled, ctx.Err(), "session acquisition cancelled")
	case out := <-done:
		return out.h, out.err
	}
}

// ActivePage returns the live page capability. Callers are expected to
// call EnsureReady first; the Action Executor always does, so the
// SessionNotReady path is defensive.
func (s *Session) ActivePage() (playwright.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady || s.handles == nil {
		return nil, newError(KindSessionNotReady, "session is %s, not ready", s.state)
	}
	return s.handles.page, nil
}

// Close releases the browser resources and moves the session to
// StateClosed. Release failures are swallowed: the goal here is
// cleanup, not correctness signaling. Idempotent; closing a closed or
// never-opened session is a no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handles != nil {
		s.handles.release()
		s.handles = nil
	}
	if s.state != StateClosed {
		s.logger.Infof("session closed")
	}
	s.state = StateClosed
	return nil
}

// DisposeOnShutdown is invoked by the hosting runtime's shutdown
// notification. Identical to Close, with all failures suppressed:
// shutdown must never raise.
func (s *Session) DisposeOnShutdown() {
	_ = s.Close()
}

// playwrightLauncher acquires the browser stack through the Playwright
// driver: install driver, start it, launch Chromium headless against
// the located executable, open one context and one page.
type playwrightLauncher struct{}

func (l *playwrightLauncher) Acquire(execPath string, cfg *config.Config) (*handles, error) {
	// Driver output is discarded so it cannot interleave with the host's
	// own rendering.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright driver: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright driver: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless:       playwright.Bool(cfg.IsHeadless()),
		ExecutablePath: playwright.String(execPath),
		Args:           chromiumFlags,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
		UserAgent: playwright.String(cfg.UserAgent),
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		_ = browserCtx.Close()
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(cfg.ActionTimeout)

	release := func() {
		_ = page.Close()
		_ = browserCtx.Close()
		_ = browser.Close()
		_ = pw.Stop()
	}

	return &handles{page: page, release: release}, nil
}
