package profile

import "strings"

// Bullet is the prefix used when formatting lists for prompt text.
const Bullet = "•"

// NormalizeList filters a list down to its non-blank entries, trimming
// each one. A nil slice yields an empty (non-nil) slice.
//
// The function is total: any input produces a valid result, never an
// error. It is also idempotent, which callers rely on when data passes
// through several formatting layers.
func NormalizeList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// FormatList renders a normalized list as bullet lines joined by
// newlines. Returns the empty string when nothing survives
// normalization; callers use that to fall back to a fixed sentence.
func FormatList(items []string) string {
	return FormatListWith(items, Bullet)
}

// FormatListWith is FormatList with a custom line prefix.
func FormatListWith(items []string, prefix string) string {
	normalized := NormalizeList(items)
	if len(normalized) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range normalized {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(prefix)
		b.WriteByte(' ')
		b.WriteString(item)
	}
	return b.String()
}
