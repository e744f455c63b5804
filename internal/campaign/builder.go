package campaign

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/linespec"
	"github.com/velora-labs/promptforge/internal/profile"
)

// Builder generates prompt packages for supported campaigns.
//
// By default lines are processed strictly sequentially: one model call
// per line, awaited before the next. WithParallelism enables a bounded
// fan-out; package order always follows the spec table regardless of
// completion order, because results land in a slice indexed by line
// position.
type Builder struct {
	completer   completion.Completer
	parallelism int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithParallelism bounds concurrent model calls per Build. Values below
// 1 keep the sequential default.
func WithParallelism(n int) BuilderOption {
	return func(b *Builder) {
		if n >= 1 {
			b.parallelism = n
		}
	}
}

// NewBuilder creates a Builder using the given completion service.
func NewBuilder(c completion.Completer, opts ...BuilderOption) *Builder {
	b := &Builder{completer: c, parallelism: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates the prompt package for one campaign and profile.
// Returns ErrUnknownCampaign for an unrecognized id. A failed model
// call fails the whole build; there is no partial package.
func (b *Builder) Build(ctx context.Context, campaignID string, p profile.ClientProfile) (PromptPackage, error) {
	def, ok := campaigns[campaignID]
	if !ok {
		return PromptPackage{}, fmt.Errorf("%q: %w", campaignID, ErrUnknownCampaign)
	}

	specs := def.specs()
	prompts := make([]Prompt, len(specs))

	buildLine := func(ctx context.Context, i int, spec linespec.LineSpec) error {
		resolved := linespec.WithClientContext(spec, p, def.overrides(spec, p))
		text, err := GenerateLinePrompt(ctx, b.completer, p, resolved, def.name)
		if err != nil {
			return fmt.Errorf("line %s: %w", spec.LineID, err)
		}
		prompts[i] = Prompt{
			ID:             spec.LineID,
			Name:           spec.Name,
			TargetVariable: spec.TargetVariable,
			PromptText:     text,
			DependsOn:      append([]string(nil), spec.DependsOn...),
		}
		return nil
	}

	if b.parallelism <= 1 {
		for i, spec := range specs {
			if err := buildLine(ctx, i, spec); err != nil {
				return PromptPackage{}, err
			}
		}
	} else {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(b.parallelism)
		for i, spec := range specs {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return buildLine(ctx, i, spec)
			})
		}
		if err := g.Wait(); err != nil {
			return PromptPackage{}, err
		}
	}

	return PromptPackage{Campaign: def.name, Prompts: prompts}, nil
}
