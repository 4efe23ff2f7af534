package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// NavigateParams configures a navigate action.
type NavigateParams struct {
	// URL to navigate to. Required.
	URL string

	// WaitForLoad waits for the configured load condition before
	// returning. Defaults to true; when false the action returns as soon
	// as the navigation is committed.
	WaitForLoad *bool
}

// Navigate drives the active page to a URL and reports the resolved
// title and final URL. The navigation wait condition comes from the
// session configuration; its timeout is the driver default rather than
// a hard cap.
func (e *Executor) Navigate(ctx context.Context, params NavigateParams) (*Envelope, error) {
	return e.run(ctx, "navigate", func(page playwright.Page) (*Envelope, error) {
		if params.URL == "" {
			return nil, newError(KindNavigationFailure, "url is required")
		}
		if err := e.checkHostAllowed(params.URL); err != nil {
			return nil, err
		}

		waitUntil := playwright.WaitUntilState(e.session.Config().WaitUntil)
		if params.WaitForLoad != nil && !*params.WaitForLoad {
			waitUntil = playwright.WaitUntilState("commit")
		}

		if _, err := page.Goto(params.URL, playwright.PageGotoOptions{WaitUntil: &waitUntil}); err != nil {
			return nil, wrapError(KindNavigationFailure, err, "navigation to %s failed", params.URL)
		}

		title, err := page.Title()
		if err != nil {
			title = ""
		}
		finalURL := page.URL()

		return textEnvelope(
			fmt.Sprintf("Navigated to %s\nTitle: %s", finalURL, title),
			map[string]interface{}{
				"url":   finalURL,
				"title": title,
			},
		), nil
	})
}
