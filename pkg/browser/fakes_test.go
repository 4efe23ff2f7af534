package browser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/pilot/pkg/config"
)

// fakeLocator returns a fixed path or error without touching the
// filesystem.
type fakeLocator struct {
	path string
	err  error
}

func (l *fakeLocator) Locate() (string, error) {
	if l.err != nil {
		return "", l.err
	}
	return l.path, nil
}

// fakeLauncher stands in for the playwright launcher so session
// lifecycle can be exercised without a real browser. Counters are
// mutex-guarded because an abandoned acquisition releases from its own
// goroutine.
type fakeLauncher struct {
	mu           sync.Mutex
	page         playwright.Page
	failWith     error
	acquisitions int
	releases     int
	delay        time.Duration
}

func (l *fakeLauncher) Acquire(execPath string, cfg *config.Config) (*handles, error) {
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if l.failWith != nil {
		return nil, l.failWith
	}
	l.mu.Lock()
	l.acquisitions++
	l.mu.Unlock()
	return &handles{
		page: l.page,
		release: func() {
			l.mu.Lock()
			l.releases++
			l.mu.Unlock()
		},
	}, nil
}

func (l *fakeLauncher) acquired() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquisitions
}

func (l *fakeLauncher) released() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releases
}

// fakePage implements the slice of playwright.Page the executor
// touches. Unimplemented methods panic via the embedded interface,
// which is fine: a panic means the executor reached for something the
// tests did not model.
type fakePage struct {
	playwright.Page

	url        string
	title      string
	content    string
	elements   map[string]*fakeElement
	scrollY    int
	docHeight  int
	screenshot []byte
	gotoErr    error
	waitDelay  time.Duration
}

func newFakePage() *fakePage {
	return &fakePage{
		url:        "about:blank",
		elements:   map[string]*fakeElement{},
		docHeight:  2400,
		screenshot: []byte("\x89PNG fake image bytes"),
	}
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	p.url = url
	return nil, nil
}

func (p *fakePage) Title() (string, error) {
	return p.title, nil
}

func (p *fakePage) URL() string {
	return p.url
}

func (p *fakePage) Content() (string, error) {
	return p.content, nil
}

func (p *fakePage) QuerySelector(selector string, options ...playwright.PageQuerySelectorOptions) (playwright.ElementHandle, error) {
	element, ok := p.elements[selector]
	if !ok {
		return nil, nil
	}
	return element, nil
}

func (p *fakePage) WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
	if p.waitDelay > 0 {
		time.Sleep(p.waitDelay)
	}
	if element, ok := p.elements[selector]; ok {
		return element, nil
	}

	timeout := 30000.0
	if len(options) > 0 && options[0].Timeout != nil {
		timeout = *options[0].Timeout
	}
	return nil, fmt.Errorf("playwright: Timeout %.0fms exceeded waiting for selector %q", timeout, selector)
}

func (p *fakePage) Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error) {
	return p.screenshot, nil
}

func (p *fakePage) Evaluate(expression string, args ...interface{}) (interface{}, error) {
	if !strings.Contains(expression, "scroll") {
		return nil, fmt.Errorf("unexpected script: %s", expression)
	}

	pair := args[0].([]interface{})
	direction := pair[0].(string)
	amount := pair[1].(int)

	switch direction {
	case "down":
		p.scrollY += amount
	case "up":
		p.scrollY -= amount
	case "bottom":
		p.scrollY = p.docHeight
	case "top":
		p.scrollY = 0
	}
	if p.scrollY > p.docHeight {
		p.scrollY = p.docHeight
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
	return p.scrollY, nil
}

func (p *fakePage) WaitForLoadState(options ...playwright.PageWaitForLoadStateOptions) error {
	return nil
}

func (p *fakePage) SetDefaultTimeout(timeout float64) {}

// fakeElement records interactions so tests can assert what the
// executor actually did.
type fakeElement struct {
	playwright.ElementHandle

	text       string
	value      string
	clicks     int
	pressed    []string
	screenshot []byte
}

func (e *fakeElement) Click(options ...playwright.ElementHandleClickOptions) error {
	e.clicks++
	return nil
}

func (e *fakeElement) Fill(value string, options ...playwright.ElementHandleFillOptions) error {
	e.value = value
	return nil
}

func (e *fakeElement) Type(value string, options ...playwright.ElementHandleTypeOptions) error {
	e.value += value
	return nil
}

func (e *fakeElement) Press(key string, options ...playwright.ElementHandlePressOptions) error {
	e.pressed = append(e.pressed, key)
	return nil
}

func (e *fakeElement) TextContent() (string, error) {
	return e.text, nil
}

func (e *fakeElement) Screenshot(options ...playwright.ElementHandleScreenshotOptions) ([]byte, error) {
	if e.screenshot == nil {
		return []byte("\x89PNG fake element"), nil
	}
	return e.screenshot, nil
}

// newTestSession wires a session to fakes and returns both.
func newTestSession(page playwright.Page) (*Session, *fakeLauncher) {
	session := NewSession(config.Default())
	launcher := &fakeLauncher{page: page}
	session.launcher = launcher
	session.locator = &fakeLocator{path: "/usr/bin/fake-chromium"}
	return session, launcher
}

// newTestExecutor wires an executor to a fake page.
func newTestExecutor(page playwright.Page) (*Executor, *fakeLauncher) {
	session, launcher := newTestSession(page)
	executor, err := NewExecutor(session)
	if err != nil {
		panic(err)
	}
	return executor, launcher
}
