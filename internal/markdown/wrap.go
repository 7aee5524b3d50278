package markdown

import "strings"

// DefaultWrapWidth is the soft limit applied to prose lines.
const DefaultWrapWidth = 109

// fenceMarker toggles code-block state for the whole document traversal.
const fenceMarker = "```"

// Wrap soft-wraps prose lines longer than max by greedily packing
// whitespace-delimited words. Exempt and emitted verbatim: fence lines and
// everything inside a fenced code block, table rows and separators,
// blockquote lines, and lines containing a URL scheme marker. A single word
// longer than max is never split.
func Wrap(s string, max int) string {
	if max <= 0 {
		max = DefaultWrapWidth
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fenceMarker) {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence || exemptFromWrap(line, trimmed) || len(line) <= max {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, max)...)
	}

	return strings.Join(out, "\n")
}

// exemptFromWrap reports whether a line must never be rewrapped.
func exemptFromWrap(line, trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") ||
		strings.HasPrefix(trimmed, ">") ||
		strings.Contains(line, "://")
}

// wrapLine splits one overlong line into greedily packed output lines.
func wrapLine(line string, max int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var out []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > max {
			out = append(out, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(out, cur)
}
