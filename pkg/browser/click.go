package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ClickParams configures a click action.
type ClickParams struct {
	// Selector identifies the element to click. Required.
	Selector string

	// WaitForNavigation waits for the configured load condition after
	// the click, for clicks that trigger a page change. Defaults to
	// false.
	WaitForNavigation bool
}

// Click clicks an element. The selector is resolved before the click is
// attempted, so an absent element fails with ElementNotFound and no
// click is performed.
func (e *Executor) Click(ctx context.Context, params ClickParams) (*Envelope, error) {
	return e.run(ctx, "click", func(page playwright.Page) (*Envelope, error) {
		if params.Selector == "" {
			return nil, fmt.Errorf("selector is required")
		}

		element, err := resolveElement(page, params.Selector)
		if err != nil {
			return nil, err
		}

		if err := element.Click(); err != nil {
			return nil, fmt.Errorf("click failed: %w", err)
		}

		if params.WaitForNavigation {
			state := playwright.LoadState(e.session.Config().WaitUntil)
			if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{State: &state}); err != nil {
				return nil, fmt.Errorf("navigation after click failed: %w", err)
			}
		}

		currentURL := page.URL()
		return textEnvelope(
			fmt.Sprintf("Clicked %q\nCurrent URL: %s", params.Selector, currentURL),
			map[string]interface{}{
				"selector": params.Selector,
				"url":      currentURL,
			},
		), nil
	})
}
