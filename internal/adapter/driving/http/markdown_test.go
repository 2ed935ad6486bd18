package httphandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Title\n\nSome **bold** text.")
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdown_Empty(t *testing.T) {
	assert.Empty(t, RenderMarkdown(""))
}

func TestRenderMarkdown_GFMTable(t *testing.T) {
	out := RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, out, "<table>")
}

func TestRenderMarkdown_StripsScript(t *testing.T) {
	out := RenderMarkdown("hello <script>alert(1)</script> world")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestRenderMarkdown_StripsEventHandlers(t *testing.T) {
	out := RenderMarkdown(`<img src="x" onerror="alert(1)">`)
	assert.NotContains(t, out, "onerror")
}
