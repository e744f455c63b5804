// Package fieldref defines the closed set of field-reference tokens that
// line specifications use to name client-profile fields without
// embedding their values (e.g. "client_profile.case_study.problem").
//
// Each token maps to a human-readable Spanish phrase (used when
// rewriting instructions) and to a resolver that renders the field's
// live value with a fixed fallback sentence when the field is empty.
// Strings outside the enumeration pass through unchanged: free-text
// dependencies such as "Industrial Data (...)" are legal and must
// survive resolution verbatim.
package fieldref

import (
	"errors"
	"fmt"

	"github.com/velora-labs/promptforge/internal/profile"
)

// ErrUnknown indicates a string that is not a recognized field-reference
// token.
var ErrUnknown = errors.New("unknown field reference")

// Raw token strings as they appear in line-spec tables. These are wire
// literals shared with external templates; changing one breaks every
// spec that embeds it.
const (
	ProofPoints          = "client_profile.proof_points"
	ValueProps           = "client_profile.value_props"
	Offer                = "client_profile.offer"
	ICPCompanyTypes      = "client_profile.icp.company_types"
	ICPBuyerRoles        = "client_profile.icp.buyer_roles"
	ClientSummary        = "client_profile.client_summary"
	ConstraintsTone      = "client_profile.constraints.tone"
	ConstraintsLanguage  = "client_profile.constraints.language"
	CaseName             = "client_profile.case_study.name"
	CaseIndustry         = "client_profile.case_study.industry"
	CaseCompanySize      = "client_profile.case_study.company_size"
	CaseSimilarCompanies = "client_profile.case_study.similar_companies"
	CaseProblem          = "client_profile.case_study.problem"
	CaseSolution         = "client_profile.case_study.solution"
	CasePhases           = "client_profile.case_study.phases"
	CaseResultsGeneral   = "client_profile.case_study.results.general"
	CaseResultsNumeric   = "client_profile.case_study.results.numeric"
	BuyerPersona         = "client_profile.buyer_persona"
)

// tokenOrder is the canonical enumeration order. Sanitize applies
// replacements in this order; it must stay fixed so identical input
// always yields identical prompt text.
var tokenOrder = []string{
	ProofPoints,
	ValueProps,
	Offer,
	ICPCompanyTypes,
	ICPBuyerRoles,
	ClientSummary,
	ConstraintsTone,
	ConstraintsLanguage,
	CaseName,
	CaseIndustry,
	CaseCompanySize,
	CaseSimilarCompanies,
	CaseProblem,
	CaseSolution,
	CasePhases,
	CaseResultsGeneral,
	CaseResultsNumeric,
	BuyerPersona,
}

// definition binds a token to its display phrase and value resolver.
type definition struct {
	// phrase replaces the raw token inside instruction text.
	phrase string
	// summarize renders the live field value, or a fixed fallback when
	// the field is empty. Receives an already-normalized profile.
	summarize func(p profile.ClientProfile) string
}

// ---------------------------------------------------------------------------
// Token type - represents a validated field-reference token
// ---------------------------------------------------------------------------

// Token represents a validated field-reference token. Zero value is
// invalid; use Parse to create one from untrusted input.
type Token struct {
	token string
}

// Parse validates a raw string against the enumeration.
// Returns ErrUnknown for anything outside the 18 known tokens.
func Parse(s string) (Token, error) {
	if _, ok := definitions[s]; !ok {
		return Token{}, fmt.Errorf("%q: %w", s, ErrUnknown)
	}
	return Token{token: s}, nil
}

// MustParse parses a token, panicking if invalid.
// Use only for compile-time constants and tests.
func MustParse(s string) Token {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Known reports whether s is one of the enumerated tokens.
func Known(s string) bool {
	_, ok := definitions[s]
	return ok
}

// String returns the raw token string.
func (t Token) String() string {
	return t.token
}

// Phrase returns the human-readable description used when rewriting
// instruction text. Panics on the zero value.
func (t Token) Phrase() string {
	if t.token == "" {
		panic("fieldref.Token.Phrase called on zero value")
	}
	return definitions[t.token].phrase
}

// Summarize renders the token's field value from the given profile,
// falling back to the token's fixed sentence when the field is empty.
// Panics on the zero value.
func (t Token) Summarize(p profile.ClientProfile) string {
	if t.token == "" {
		panic("fieldref.Token.Summarize called on zero value")
	}
	return definitions[t.token].summarize(p.Normalized())
}

// Tokens returns the enumeration in canonical order.
func Tokens() []string {
	out := make([]string, len(tokenOrder))
	copy(out, tokenOrder)
	return out
}
