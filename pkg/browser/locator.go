package browser

import (
	"os"
	"os/exec"
)

// Locator resolves a usable browser executable. Implementations are
// pluggable so alternate environments can substitute their own lookup
// strategy without touching the session.
type Locator interface {
	Locate() (string, error)
}

// ChromiumLocator probes a fixed, ordered list of well-known names and
// installation locations for Chromium-family browsers and returns the
// first that exists and is executable.
type ChromiumLocator struct {
	// ExtraCandidates are absolute paths probed before the default list,
	// typically the configured executable_path override.
	ExtraCandidates []string
}

// pathCandidates are binary names resolved through $PATH, in preference
// order.
var pathCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
}

// installCandidates are well-known absolute install locations probed
// when nothing is on $PATH.
var installCandidates = []string{
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/opt/google/chrome/chrome",
	"/snap/bin/chromium",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
}

// Locate returns the path to the first usable browser executable, or a
// BrowserNotFound error carrying an install hint.
func (l *ChromiumLocator) Locate() (string, error) {
	for _, candidate := range l.ExtraCandidates {
		if candidate != "" && isExecutable(candidate) {
			return candidate, nil
		}
	}

	for _, name := range pathCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, path := range installCandidates {
		if isExecutable(path) {
			return path, nil
		}
	}

	return "", newError(KindBrowserNotFound,
		"no Chromium-family browser executable found; install one (e.g. 'apt-get install chromium' or 'brew install --cask google-chrome') or set executable_path in the configuration")
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Mode()&0111 != 0
}
