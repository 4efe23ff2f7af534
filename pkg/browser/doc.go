// Package browser provides a controllable, stateful session for driving
// a headless Chromium-family browser from programmatic commands.
//
// The package is built around four pieces:
//
//  1. Locator: resolves a usable browser executable at acquisition time
//  2. Session: owns the browser process and its single active page, with
//     an explicit Uninitialized/Launching/Ready/Closed lifecycle
//  3. Executor: the action surface (navigate, screenshot, click, type,
//     get_text, scroll, wait_for, debug_capture, close)
//  4. Envelope: the uniform success/failure-tagged result every action
//     returns
//
// # Lifecycle
//
// Sessions launch lazily: the first action acquires the browser and
// page, and subsequent actions reuse them until an explicit close. A
// failed acquisition reverts the session to a retryable state; an action
// after a close acquires a fresh browser. The hosting runtime's
// shutdown hook should call Session.DisposeOnShutdown, which never
// raises.
//
// # Concurrency
//
// One session supports one in-flight action at a time; the caller is
// responsible for not issuing overlapping actions. Every action accepts
// a context and fails with a Cancelled error kind rather than hanging
// when the context is raised.
//
// # Errors
//
// Driver-level failures are classified into a small taxonomy (see Kind)
// and normalized into the result envelope at the executor boundary, so
// the hosting runtime never sees an unnormalized low-level failure.
// Element-targeted actions resolve their selector before interacting,
// so a wrong selector reports ElementNotFound instead of an opaque
// driver error.
//
// # Example Usage
//
//	session := browser.NewSession(config.Default())
//	defer session.DisposeOnShutdown()
//
//	exec, err := browser.NewExecutor(session)
//	if err != nil {
//	    return err
//	}
//
//	env, err := exec.Navigate(ctx, browser.NavigateParams{URL: "https://example.com"})
//	if err != nil {
//	    return err // browser could not be acquired
//	}
//	if env.IsError {
//	    // inspect env.Details["error"] and env.Text()
//	}
package browser
