// Package reverse turns an existing email template into per-placeholder
// generation prompts: it scans the text for {placeholder} tokens, asks
// the model to describe each one, and reconciles the model's answers
// back against the detected tokens in document order.
package reverse

import (
	"regexp"
	"strings"
)

// placeholderPattern matches one non-nested brace-delimited span. Nested
// braces are unsupported by contract: the first closing brace ends the
// token.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// PlaceholderToken is one detected {placeholder} with its surrounding
// line as context.
type PlaceholderToken struct {
	// Placeholder is the literal span including braces, e.g. "{x}".
	Placeholder string `json:"placeholder"`
	// Inner is the trimmed interior text.
	Inner string `json:"inner"`
	// Snippet is the trimmed full line containing the token.
	Snippet string `json:"snippet"`
}

// ExtractPlaceholderSnippets scans the text left to right for
// {placeholder} spans. Blank interiors are skipped. Duplicate literal
// spans are deduplicated, first occurrence wins, even when a later
// occurrence sits on a different line. Output order is order of first
// appearance.
func ExtractPlaceholderSnippets(text string) []PlaceholderToken {
	matches := placeholderPattern.FindAllStringSubmatchIndex(text, -1)

	tokens := make([]PlaceholderToken, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		placeholder := text[m[0]:m[1]]
		inner := strings.TrimSpace(text[m[2]:m[3]])
		if inner == "" {
			continue
		}
		if _, dup := seen[placeholder]; dup {
			continue
		}
		seen[placeholder] = struct{}{}

		tokens = append(tokens, PlaceholderToken{
			Placeholder: placeholder,
			Inner:       inner,
			Snippet:     surroundingLine(text, m[0], m[1]),
		})
	}

	return tokens
}

// surroundingLine returns the trimmed line containing [start,end):
// from the previous newline (exclusive) to the next newline (exclusive),
// clipped to the document bounds at the edges.
func surroundingLine(text string, start, end int) string {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	lineEnd := strings.IndexByte(text[end:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += end
	}
	return strings.TrimSpace(text[lineStart:lineEnd])
}
