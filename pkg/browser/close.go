package browser

import "context"

// Close tears down the session's browser resources. Idempotent and
// never an error: closing a closed or never-opened session is a no-op,
// and the next action after a close acquires a fresh browser.
func (e *Executor) Close(context.Context) *Envelope {
	_ = e.session.Close()

	return textEnvelope("Browser session closed", map[string]interface{}{
		"state": string(e.session.State()),
	})
}
