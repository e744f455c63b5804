package fieldref

import (
	"strings"

	"github.com/velora-labs/promptforge/internal/profile"
)

// Catch-all substitutions applied after the enumerated tokens. The
// lowercase literal is a substring of every token, so token replacement
// must run first.
const (
	rawPrefix         = "client_profile"
	rawPrefixUpper    = "CLIENT_PROFILE"
	prefixPhrase      = "perfil del cliente"
	prefixPhraseUpper = "el contexto del cliente"
)

// Sanitize rewrites every enumerated field-reference token inside text
// into its human-readable phrase, then rewrites the bare
// "client_profile"/"CLIENT_PROFILE" literals. Replacement is literal
// substring replacement of all occurrences, in canonical token order.
//
// Sanitize is total and a no-op on text containing no tokens.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	sanitized := text
	for _, token := range tokenOrder {
		sanitized = strings.ReplaceAll(sanitized, token, definitions[token].phrase)
	}
	sanitized = strings.ReplaceAll(sanitized, rawPrefix, prefixPhrase)
	sanitized = strings.ReplaceAll(sanitized, rawPrefixUpper, prefixPhraseUpper)
	return sanitized
}

// SummarizeDependency resolves one dependency entry against the live
// profile. Enumerated tokens render their field value (or the token's
// fixed fallback sentence); anything else, such as free-text data-source
// notes, passes through unchanged.
func SummarizeDependency(dep string, p profile.ClientProfile) string {
	tok, err := Parse(dep)
	if err != nil {
		return dep
	}
	return tok.Summarize(p)
}
