package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// DefaultWaitTimeout is the wait_for timeout in milliseconds.
const DefaultWaitTimeout = 5000.0

// WaitForParams configures a wait_for action.
type WaitForParams struct {
	// Selector identifies the element to wait for. Required.
	Selector string

	// TimeoutMs bounds the wait, in milliseconds. Defaults to
	// DefaultWaitTimeout.
	TimeoutMs float64
}

// WaitFor blocks until the element appears, failing with WaitTimeout if
// it does not appear within the bound.
func (e *Executor) WaitFor(ctx context.Context, params WaitForParams) (*Envelope, error) {
	return e.run(ctx, "wait_for", func(page playwright.Page) (*Envelope, error) {
		if params.Selector == "" {
			return nil, fmt.Errorf("selector is required")
		}

		timeout := params.TimeoutMs
		if timeout <= 0 {
			timeout = DefaultWaitTimeout
		}

		_, err := page.WaitForSelector(params.Selector, playwright.PageWaitForSelectorOptions{
			Timeout: playwright.Float(timeout),
		})
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "timeout") {
				return nil, wrapError(KindWaitTimeout, err, "element %q did not appear within %.0fms", params.Selector, timeout)
			}
			return nil, fmt.Errorf("wait failed: %w", err)
		}

		return textEnvelope(
			fmt.Sprintf("Element %q appeared", params.Selector),
			map[string]interface{}{
				"selector":  params.Selector,
				"timeoutMs": timeout,
			},
		), nil
	})
}
