package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewHTMLStripsNoise(t *testing.T) {
	raw := `<html>
		<head>
			<title>Test</title>
			<script src="app.js"></script>
			<style>body { color: red; }</style>
			<meta charset="utf-8">
		</head>
		<body>
			<!-- hidden comment -->
			<div id="main" class="container" onclick="track()">
				<a href="/docs" rel="noopener">Docs</a>
				<noscript>enable JS</noscript>
			</div>
		</body>
	</html>`

	preview, err := previewHTML(raw, 3000)
	require.NoError(t, err)

	assert.NotContains(t, preview.HTML, "script")
	assert.NotContains(t, preview.HTML, "color: red")
	assert.NotContains(t, preview.HTML, "hidden comment")
	assert.NotContains(t, preview.HTML, "enable JS")
	assert.NotContains(t, preview.HTML, "onclick")
	assert.NotContains(t, preview.HTML, "rel=")

	assert.Contains(t, preview.HTML, `<div id="main" class="container">`)
	assert.Contains(t, preview.HTML, `<a href="/docs">Docs</a>`)
	assert.False(t, preview.Truncated)
}

func TestPreviewHTMLKeepsTargetingAttributes(t *testing.T) {
	raw := `<body><form action="/search" method="get">
		<input type="text" name="q" placeholder="Search" data-testid="query">
	</form></body>`

	preview, err := previewHTML(raw, 3000)
	require.NoError(t, err)

	assert.Contains(t, preview.HTML, `action="/search"`)
	assert.Contains(t, preview.HTML, `name="q"`)
	assert.Contains(t, preview.HTML, `placeholder="Search"`)
	assert.Contains(t, preview.HTML, `data-testid="query"`)
}

func TestPreviewHTMLTruncatesAtBudget(t *testing.T) {
	raw := "<body><p>" + strings.Repeat("word ", 500) + "</p></body>"

	preview, err := previewHTML(raw, 100)
	require.NoError(t, err)

	assert.True(t, preview.Truncated)
	assert.LessOrEqual(t, len(preview.HTML), 100)
}

func TestPreviewHTMLCollapsesWhitespace(t *testing.T) {
	raw := "<body><p>spread \n\t  out    text</p></body>"

	preview, err := previewHTML(raw, 3000)
	require.NoError(t, err)
	assert.Contains(t, preview.HTML, "spread out text")
}
