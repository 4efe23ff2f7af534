package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotParams configures a screenshot action.
type ScreenshotParams struct {
	// FullPage captures the full scrollable page instead of the
	// viewport. Defaults to false.
	FullPage bool

	// Selector limits the capture to a single element when set.
	Selector string
}

// Screenshot captures a PNG of the viewport, the full page, or one
// element, captioned by mode.
func (e *Executor) Screenshot(ctx context.Context, params ScreenshotParams) (*Envelope, error) {
	return e.run(ctx, "screenshot", func(page playwright.Page) (*Envelope, error) {
		var data []byte
		var caption string

		if params.Selector != "" {
			element, err := resolveElement(page, params.Selector)
			if err != nil {
				return nil, err
			}
			data, err = element.Screenshot(playwright.ElementHandleScreenshotOptions{
				Type: playwright.ScreenshotTypePng,
			})
			if err != nil {
				return nil, fmt.Errorf("element screenshot failed: %w", err)
			}
			caption = fmt.Sprintf("Screenshot of element %q", params.Selector)
		} else {
			var err error
			data, err = page.Screenshot(playwright.PageScreenshotOptions{
				FullPage: playwright.Bool(params.FullPage),
				Type:     playwright.ScreenshotTypePng,
			})
			if err != nil {
				return nil, fmt.Errorf("screenshot failed: %w", err)
			}
			if params.FullPage {
				caption = "Full-page screenshot"
			} else {
				caption = "Viewport screenshot"
			}
		}

		details := map[string]interface{}{
			"fullPage": params.FullPage,
		}
		if params.Selector != "" {
			details["selector"] = params.Selector
		}

		return &Envelope{
			Content: []ContentItem{
				TextContent{Text: caption},
				ImageContent{Data: data, MimeType: "image/png"},
			},
			Details: details,
		}, nil
	})
}
