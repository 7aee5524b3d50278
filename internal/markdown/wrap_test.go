package markdown_test

import (
	"strings"
	"testing"

	"github.com/claubot/clau/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_LongProseIsWrapped(t *testing.T) {
	in := strings.Repeat("budget ", 30) // 210 chars, well past the limit
	out := markdown.Wrap(in, 50)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 50, "line %q", l)
	}
	assert.Equal(t, strings.TrimSpace(in), strings.ReplaceAll(out, "\n", " "))
}

func TestWrap_ShortLinesUntouched(t *testing.T) {
	in := "short line\nanother short line"
	assert.Equal(t, in, markdown.Wrap(in, markdown.DefaultWrapWidth))
}

func TestWrap_ExemptLines(t *testing.T) {
	long := strings.Repeat("x ", 40)
	tests := []struct {
		name string
		line string
	}{
		{"table row", "| " + long + " | cell |"},
		{"separator", "|---|---|"},
		{"blockquote", "> " + long},
		{"url", "see https://example.com/a/very/long/path for details " + long},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.line, markdown.Wrap(tt.line, 30))
		})
	}
}

func TestWrap_CodeFenceStatePersists(t *testing.T) {
	long := strings.Repeat("code ", 20)
	in := "```\n" + long + "\n```\n" + long
	out := markdown.Wrap(in, 30)

	lines := strings.Split(out, "\n")
	assert.Equal(t, long, lines[1], "fenced content must stay verbatim")
	assert.Greater(t, len(lines), 4, "prose after the closing fence wraps again")
}

func TestWrap_UnclosedFenceExemptsRest(t *testing.T) {
	long := strings.Repeat("word ", 20)
	in := "```python\n" + long
	assert.Equal(t, in, markdown.Wrap(in, 30))
}
