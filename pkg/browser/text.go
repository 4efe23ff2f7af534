package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// DefaultMaxTextLength bounds extracted text when no cap is given.
const DefaultMaxTextLength = 10000

// GetTextParams configures a get_text action.
type GetTextParams struct {
	// Selector limits extraction to a single element. When empty the
	// whole document body is extracted.
	Selector string

	// MaxLength bounds the extracted text, in characters. Defaults to
	// DefaultMaxTextLength.
	MaxLength int
}

// GetText extracts visible text from the page or one element,
// truncating at the cap with a trailing marker. Details always carry
// the untruncated length and a truncation flag.
func (e *Executor) GetText(ctx context.Context, params GetTextParams) (*Envelope, error) {
	return e.run(ctx, "get_text", func(page playwright.Page) (*Envelope, error) {
		maxLength := params.MaxLength
		if maxLength <= 0 {
			maxLength = DefaultMaxTextLength
		}

		selector := params.Selector
		if selector == "" {
			selector = "body"
		}

		element, err := resolveElement(page, selector)
		if err != nil {
			return nil, err
		}

		content, err := element.TextContent()
		if err != nil {
			return nil, fmt.Errorf("text extraction failed: %w", err)
		}

		total := len(content)
		text, truncated := truncate(content, maxLength)
		if truncated {
			text += truncationMarker(maxLength, total)
		}

		details := map[string]interface{}{
			"length":    total,
			"truncated": truncated,
		}
		if params.Selector != "" {
			details["selector"] = params.Selector
		}

		return textEnvelope(text, details), nil
	})
}
