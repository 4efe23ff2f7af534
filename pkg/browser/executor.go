package browser

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gobwas/glob"
	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pilot/pkg/logging"
)

// Executor exposes the action surface against one session's active
// page. Every action lazily acquires the browser through
// Session.EnsureReady, runs against the page, and returns the uniform
// result envelope. Failures past acquisition are normalized into the
// envelope rather than raised to the caller.
type Executor struct {
	session      *Session
	allowedHosts []glob.Glob
	logger       *logging.Logger
}

// NewExecutor creates an executor for the given session. The session's
// allowed-host patterns are compiled once here.
func NewExecutor(session *Session) (*Executor, error) {
	allowedHosts, err := session.Config().CompileAllowedHosts()
	if err != nil {
		return nil, err
	}
	logger, _ := logging.NewLogger("browser")

	return &Executor{
		session:      session,
		allowedHosts: allowedHosts,
		logger:       logger,
	}, nil
}

// Session returns the executor's session handle.
func (e *Executor) Session() *Session {
	return e.session
}

// run wraps one action: ensure the session is ready, run fn against the
// active page bridged onto the caller's context, and normalize any
// failure into the envelope. Only acquisition failures are returned as
// Go errors, since no meaningful partial result exists for them.
func (e *Executor) run(ctx context.Context, op string, fn func(page playwright.Page) (*Envelope, error)) (*Envelope, error) {
	if err := e.session.EnsureReady(ctx); err != nil {
		e.logger.Errorf("%s: session acquisition failed: %v", op, err)
		return nil, err
	}

	page, err := e.session.ActivePage()
	if err != nil {
		return errorEnvelope(err), nil
	}

	env, err := await(ctx, func() (*Envelope, error) {
		return fn(page)
	})
	if err != nil {
		e.logger.Warnf("%s failed: %v", op, err)
		return errorEnvelope(err), nil
	}

	e.logger.Debugf("%s completed", op)
	return env, nil
}

// await runs fn on a goroutine and abandons it when the caller's
// context is raised, so a stuck driver round-trip fails with Cancelled
// instead of hanging the caller.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := fn()
		done <- outcome{v, err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, wrapError(KindCancelled, ctx.Err(), "action cancelled")
	case out := <-done:
		return out.value, out.err
	}
}

// resolveElement probes for the selector before any interaction, so a
// wrong selector fails fast with ElementNotFound instead of surfacing
// as an opaque driver error. Shared by every element-targeted action.
func resolveElement(page playwright.Page, selector string) (playwright.ElementHandle, error) {
	element, err := page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	if element == nil {
		return nil, newError(KindElementNotFound, "no element matches selector %q", selector)
	}
	return element, nil
}

// checkHostAllowed enforces the configured allowed-host patterns. An
// empty pattern list allows everything.
func (e *Executor) checkHostAllowed(rawURL string) error {
	if len(e.allowedHosts) == 0 {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return wrapError(KindNavigationFailure, err, "invalid url %q", rawURL)
	}

	host := parsed.Hostname()
	for _, g := range e.allowedHosts {
		if g.Match(host) {
			return nil
		}
	}
	return newError(KindNavigationFailure, "navigation to host %q is not allowed by configuration", host)
}

// truncate cuts s at max bytes. The boolean reports whether anything
// was cut.
func truncate(s string, max int) (string, bool) {
	if max <= 0 || len(s) <= max {
		return s, false
	}
	return s[:max], true
}

// truncationMarker is the uniform trailing marker appended to any
// bounded text output that was cut.
func truncationMarker(shown, total int) string {
	return fmt.Sprintf("\n\n[Content truncated: %d of %d characters shown]", shown, total)
}

// clip bounds a one-line echo of user text, marking the cut inline.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
