package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// typedEchoLimit bounds the echo of typed text in the result.
const typedEchoLimit = 50

// TypeParams configures a type action.
type TypeParams struct {
	// Selector identifies the input element. Required.
	Selector string

	// Text to type into the element.
	Text string

	// ClearFirst replaces any existing value instead of appending.
	// Defaults to true.
	ClearFirst *bool

	// PressEnter presses Enter after typing, for submitting search
	// boxes and forms. Defaults to false.
	PressEnter bool
}

// Type enters text into an input element. The selector is resolved
// before any keystroke, so an absent element fails with
// ElementNotFound.
func (e *Executor) Type(ctx context.Context, params TypeParams) (*Envelope, error) {
	return e.run(ctx, "type", func(page playwright.Page) (*Envelope, error) {
		if params.Selector == "" {
			return nil, fmt.Errorf("selector is required")
		}

		element, err := resolveElement(page, params.Selector)
		if err != nil {
			return nil, err
		}

		clearFirst := params.ClearFirst == nil || *params.ClearFirst
		if clearFirst {
			// Fill replaces the element's existing value.
			if err := element.Fill(params.Text); err != nil {
				return nil, fmt.Errorf("fill failed: %w", err)
			}
		} else {
			if err := element.Type(params.Text); err != nil {
				return nil, fmt.Errorf("type failed: %w", err)
			}
		}

		if params.PressEnter {
			if err := element.Press("Enter"); err != nil {
				return nil, fmt.Errorf("pressing Enter failed: %w", err)
			}
		}

		return textEnvelope(
			fmt.Sprintf("Typed %q into %q", clip(params.Text, typedEchoLimit), params.Selector),
			map[string]interface{}{
				"selector":     params.Selector,
				"pressedEnter": params.PressEnter,
			},
		), nil
	})
}
