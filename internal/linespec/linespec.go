// Package linespec holds the declarative line specifications that drive
// campaign prompt generation, and the resolver that combines a spec with
// a client profile into a fully-resolved instruction block.
//
// A line spec describes one dynamic sentence of a campaign email: its
// fixed structure, word-count and style rules, step-by-step
// instructions (which may embed field-reference tokens), sample outputs,
// and the profile fields it depends on. The tables in lookalike.go and
// creativeideas.go are static configuration, versioned with the binary.
package linespec

// LineSpec is one declarative line of a campaign email template.
type LineSpec struct {
	LineID         string   `json:"line_id"`
	Name           string   `json:"name"`
	TargetVariable string   `json:"target_variable"`
	Structure      string   `json:"structure"`
	Rules          Rules    `json:"rules"`
	Instructions   []string `json:"instructions"`
	Examples       []string `json:"examples"`
	DependsOn      []string `json:"depends_on"`
}

// Rules constrains the generated line. Only MaxWords and NoInvention are
// universal; the rest appear per line as the campaign requires.
type Rules struct {
	MaxWords    int      `json:"max_words,omitempty"`
	Tone        string   `json:"tone,omitempty"`
	Style       string   `json:"style,omitempty"`
	NoInvention bool     `json:"no_invention,omitempty"`
	Ban         []string `json:"ban,omitempty"`
	Use         []string `json:"use,omitempty"`
	Fallback    string   `json:"fallback,omitempty"`
}

// ResolvedLineSpec is a LineSpec whose instructions have been prefixed
// with the client context block and stripped of raw field-reference
// tokens, and whose dependencies have been rendered human-readable.
// The distinct type keeps unresolved specs out of the prompt renderer.
type ResolvedLineSpec LineSpec
