package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ScrollDirection selects how a scroll action moves the page.
type ScrollDirection string

const (
	ScrollDown   ScrollDirection = "down"
	ScrollUp     ScrollDirection = "up"
	ScrollBottom ScrollDirection = "bottom"
	ScrollTop    ScrollDirection = "top"
)

// DefaultScrollAmount is the pixel distance for directional scrolls.
const DefaultScrollAmount = 800

// ScrollParams configures a scroll action.
type ScrollParams struct {
	// Direction defaults to ScrollDown.
	Direction ScrollDirection

	// Amount is the scroll distance in pixels for up/down. Ignored for
	// bottom/top. Defaults to DefaultScrollAmount.
	Amount int
}

// scrollScript moves the window and reports the resulting offset.
const scrollScript = `([direction, amount]) => {
	switch (direction) {
		case "down":
			window.scrollBy(0, amount);
			break;
		case "up":
			window.scrollBy(0, -amount);
			break;
		case "bottom":
			window.scrollTo(0, document.body.scrollHeight);
			break;
		case "top":
			window.scrollTo(0, 0);
			break;
	}
	return window.pageYOffset;
}`

// Scroll moves the page and reports the new scroll offset.
func (e *Executor) Scroll(ctx context.Context, params ScrollParams) (*Envelope, error) {
	return e.run(ctx, "scroll", func(page playwright.Page) (*Envelope, error) {
		direction := params.Direction
		if direction == "" {
			direction = ScrollDown
		}
		switch direction {
		case ScrollDown, ScrollUp, ScrollBottom, ScrollTop:
		default:
			return nil, fmt.Errorf("invalid scroll direction: %s (must be 'down', 'up', 'bottom', or 'top')", direction)
		}

		amount := params.Amount
		if amount <= 0 {
			amount = DefaultScrollAmount
		}

		result, err := page.Evaluate(scrollScript, []interface{}{string(direction), amount})
		if err != nil {
			return nil, fmt.Errorf("scroll failed: %w", err)
		}

		offset := toInt(result)
		return textEnvelope(
			fmt.Sprintf("Scrolled %s\nScroll position: %dpx", direction, offset),
			map[string]interface{}{
				"direction":      string(direction),
				"scrollPosition": offset,
			},
		), nil
	})
}

// toInt converts the driver's numeric evaluate result, which arrives as
// either int or float64 depending on the value.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
