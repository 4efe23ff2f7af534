package browser

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a browser automation failure. Every failure surfaced
// to the hosting runtime carries exactly one kind so callers can react
// without parsing messages.
type Kind string

const (
	// KindBrowserNotFound means no usable browser executable was located.
	// Fatal until the environment is fixed.
	KindBrowserNotFound Kind = "browser_not_found"

	// KindLaunchFailure means acquiring the browser or page failed. The
	// session reverts to a retryable state.
	KindLaunchFailure Kind = "launch_failure"

	// KindSessionNotReady means an action reached the page before the
	// session was ready. Defensive only; not reachable from the normal
	// call order.
	KindSessionNotReady Kind = "session_not_ready"

	// KindElementNotFound means a selector matched nothing on the page.
	// Recoverable; callers should inspect the page and retry with a
	// corrected selector.
	KindElementNotFound Kind = "element_not_found"

	// KindNavigationFailure means the driver could not complete a
	// navigation, or the target host is not allowed by configuration.
	KindNavigationFailure Kind = "navigation_failure"

	// KindWaitTimeout means an element did not appear in time.
	// Recoverable.
	KindWaitTimeout Kind = "wait_timeout"

	// KindCancelled means the caller aborted the action.
	KindCancelled Kind = "cancelled"

	// KindDriver is the fallback for unclassified driver-level failures.
	KindDriver Kind = "driver_error"
)

// Error is a classified browser automation failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a classified error with a formatted message.
func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates a classified error wrapping an underlying cause.
func wrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the taxonomy kind for err. Unclassified failures map
// to KindDriver; context cancellation maps to KindCancelled.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}
	return KindDriver
}
