package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// debugHTMLLimit bounds the HTML preview in a debug capture.
const debugHTMLLimit = 3000

// DebugCaptureParams configures a debug_capture action.
type DebugCaptureParams struct {
	// IncludeHTML attaches a cleaned HTML preview of the page.
	// Defaults to true.
	IncludeHTML *bool
}

// DebugCapture collects a full-page screenshot, the title, the URL, and
// optionally a bounded HTML preview. It is the diagnostic fallback when
// another action fails and the caller needs to see what the page
// actually looks like.
func (e *Executor) DebugCapture(ctx context.Context, params DebugCaptureParams) (*Envelope, error) {
	return e.run(ctx, "debug_capture", func(page playwright.Page) (*Envelope, error) {
		title, err := page.Title()
		if err != nil {
			title = ""
		}
		currentURL := page.URL()

		data, err := page.Screenshot(playwright.PageScreenshotOptions{
			FullPage: playwright.Bool(true),
			Type:     playwright.ScreenshotTypePng,
		})
		if err != nil {
			return nil, fmt.Errorf("debug screenshot failed: %w", err)
		}

		content := []ContentItem{
			TextContent{Text: fmt.Sprintf("Page state\nURL: %s\nTitle: %s", currentURL, title)},
			ImageContent{Data: data, MimeType: "image/png"},
		}
		details := map[string]interface{}{
			"url":   currentURL,
			"title": title,
		}

		includeHTML := params.IncludeHTML == nil || *params.IncludeHTML
		details["htmlIncluded"] = includeHTML

		if includeHTML {
			raw, err := page.Content()
			if err != nil {
				return nil, fmt.Errorf("failed to read page content: %w", err)
			}
			preview, err := previewHTML(raw, debugHTMLLimit)
			if err != nil {
				return nil, fmt.Errorf("failed to clean page content: %w", err)
			}
			content = append(content, TextContent{Text: "HTML preview:\n" + preview.HTML})
			details["htmlTruncated"] = preview.Truncated
		}

		return &Envelope{Content: content, Details: details}, nil
	})
}
