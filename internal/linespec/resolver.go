package linespec

import (
	"github.com/velora-labs/promptforge/internal/fieldref"
	"github.com/velora-labs/promptforge/internal/profile"
)

// Overrides replaces parts of a LineSpec before resolution. Nil slices
// mean "keep the spec's own value"; an empty non-nil slice is an
// explicit replacement. This is how campaign builders inject
// data-dependent instruction blocks without mutating the static tables.
type Overrides struct {
	Instructions []string
	DependsOn    []string
	Structure    string
	Rules        *Rules
}

// WithClientContext resolves a line spec against a client profile:
//
//  1. overrides are merged onto a copy of the spec
//  2. the client context block is computed from the profile
//  3. every instruction is sanitized (field-reference tokens replaced
//     by human-readable phrases)
//  4. every dependency entry is summarized with its live value
//  5. final instructions = context block + sanitized instructions
//
// Resolution is pure: no I/O, no randomness, and deterministic for a
// given (spec, profile, overrides) triple.
func WithClientContext(spec LineSpec, p profile.ClientProfile, ov Overrides) ResolvedLineSpec {
	resolved := ResolvedLineSpec(spec)

	if ov.Structure != "" {
		resolved.Structure = ov.Structure
	}
	if ov.Rules != nil {
		resolved.Rules = *ov.Rules
	}

	baseInstructions := spec.Instructions
	if ov.Instructions != nil {
		baseInstructions = ov.Instructions
	}
	baseDependencies := spec.DependsOn
	if ov.DependsOn != nil {
		baseDependencies = ov.DependsOn
	}

	context := BuildClientContext(p)

	instructions := make([]string, 0, len(context)+len(baseInstructions))
	instructions = append(instructions, context...)
	for _, instruction := range baseInstructions {
		instructions = append(instructions, fieldref.Sanitize(instruction))
	}

	dependencies := make([]string, 0, len(baseDependencies))
	for _, dep := range baseDependencies {
		dependencies = append(dependencies, fieldref.SummarizeDependency(dep, p))
	}

	resolved.Instructions = instructions
	resolved.DependsOn = dependencies
	return resolved
}
