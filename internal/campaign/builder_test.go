package campaign_test

// Notes:
// - fakeCompleter records every user message and answers with a canned
//   reply derived from the call number, so package ordering is observable
// - The renderer's user message is asserted by landmark substrings, not
//   full text: the JSON blocks embed the whole profile and spec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/velora-labs/promptforge/internal/campaign"
	"github.com/velora-labs/promptforge/internal/linespec"
	"github.com/velora-labs/promptforge/internal/profile"
)

// fakeCompleter answers CompleteText with "prompt for <line_id>" parsed
// out of the user message, and fails on demand.
type fakeCompleter struct {
	mu       sync.Mutex
	calls    []string
	failOn   string
	failWith error
}

func (f *fakeCompleter) CompleteJSON(_ context.Context, _, _ string) (json.RawMessage, error) {
	return nil, errors.New("unexpected JSON call")
}

func (f *fakeCompleter) CompleteText(_ context.Context, _, user string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, user)
	f.mu.Unlock()

	id := lineIDFrom(user)
	if f.failOn != "" && id == f.failOn {
		return "", f.failWith
	}
	return "prompt for " + id, nil
}

// lineIDFrom digs the line_id out of the serialized spec in the user
// message.
func lineIDFrom(user string) string {
	const marker = `"line_id": "`
	start := strings.Index(user, marker)
	if start < 0 {
		return ""
	}
	rest := user[start+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func testProfile() profile.ClientProfile {
	return profile.ClientProfile{
		Offer:       "prospección automatizada",
		ProofPoints: []string{"+30% reply rate"},
		CaseStudy:   profile.CaseStudy{Name: "Cemex"},
	}
}

// ---------------------------------------------------------------------------
// TestBuild - Package assembly, ordering, campaign registry
// ---------------------------------------------------------------------------

func TestBuild_UnknownCampaign(t *testing.T) {
	t.Parallel()

	b := campaign.NewBuilder(&fakeCompleter{})

	_, err := b.Build(context.Background(), "nope", testProfile())

	if !errors.Is(err, campaign.ErrUnknownCampaign) {
		t.Errorf("error = %v, want ErrUnknownCampaign", err)
	}
}

func TestBuild_Lookalike(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	b := campaign.NewBuilder(fake)

	pkg, err := b.Build(context.Background(), campaign.IDLookalike, testProfile())

	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pkg.Campaign != "Lookalike" {
		t.Errorf("Campaign = %q, want Lookalike", pkg.Campaign)
	}

	specs := linespec.Lookalike()
	if len(pkg.Prompts) != len(specs) {
		t.Fatalf("got %d prompts, want %d", len(pkg.Prompts), len(specs))
	}
	for i, prompt := range pkg.Prompts {
		if prompt.ID != specs[i].LineID {
			t.Errorf("prompt %d id = %q, want %q (spec table order)", i, prompt.ID, specs[i].LineID)
		}
		if prompt.PromptText != "prompt for "+specs[i].LineID {
			t.Errorf("prompt %d text = %q", i, prompt.PromptText)
		}
		if prompt.Name != specs[i].Name || prompt.TargetVariable != specs[i].TargetVariable {
			t.Errorf("prompt %d identity fields do not match the spec table", i)
		}
	}
	if len(fake.calls) != len(specs) {
		t.Errorf("completer called %d times, want %d", len(fake.calls), len(specs))
	}
}

func TestBuild_ParallelPreservesOrder(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	b := campaign.NewBuilder(fake, campaign.WithParallelism(4))

	pkg, err := b.Build(context.Background(), campaign.IDLookalike, testProfile())

	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	specs := linespec.Lookalike()
	for i, prompt := range pkg.Prompts {
		if prompt.ID != specs[i].LineID {
			t.Errorf("prompt %d id = %q, want %q", i, prompt.ID, specs[i].LineID)
		}
	}
}

func TestBuild_LineFailureFailsWholeBuild(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("model down")
	specs := linespec.Lookalike()
	fake := &fakeCompleter{failOn: specs[2].LineID, failWith: wantErr}
	b := campaign.NewBuilder(fake)

	_, err := b.Build(context.Background(), campaign.IDLookalike, testProfile())

	if !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want wrapped %v", err, wantErr)
	}
	if !strings.Contains(err.Error(), specs[2].LineID) {
		t.Errorf("error %q does not name the failing line", err)
	}
	// Sequential: the failure on line 3 stops the build there.
	if len(fake.calls) != 3 {
		t.Errorf("completer called %d times, want 3", len(fake.calls))
	}
}

// ---------------------------------------------------------------------------
// TestBuild_ResultsLineOverride - Proof-point injection for LL_E1_L4
// ---------------------------------------------------------------------------

func TestBuild_ResultsLineOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		proofPoints []string
		wantInText  string
	}{
		{
			name:        "proof points listed literally",
			proofPoints: []string{"+30% reply rate", "2x pipeline"},
			wantInText:  "Trabaja específicamente con estos resultados reales del cliente:\\n- +30% reply rate\\n- 2x pipeline",
		},
		{
			name:        "fallback when no proof points",
			proofPoints: nil,
			wantInText:  "No se detectaron métricas concretas en los proof points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := testProfile()
			p.ProofPoints = tt.proofPoints

			fake := &fakeCompleter{}
			b := campaign.NewBuilder(fake)
			if _, err := b.Build(context.Background(), campaign.IDLookalike, p); err != nil {
				t.Fatalf("Build: %v", err)
			}

			var resultsCall string
			for _, call := range fake.calls {
				if lineIDFrom(call) == linespec.LineIDLookalikeResults {
					resultsCall = call
					break
				}
			}
			if resultsCall == "" {
				t.Fatal("no call for the results line")
			}
			// The user message embeds the resolved spec as JSON, so the
			// injected block appears with escaped newlines.
			if !strings.Contains(resultsCall, tt.wantInText) {
				t.Errorf("results-line message missing %q", tt.wantInText)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateLinePrompt - User message landmarks
// ---------------------------------------------------------------------------

func TestGenerateLinePrompt_MessageLandmarks(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	p := testProfile()
	spec := linespec.WithClientContext(linespec.Lookalike()[0], p, linespec.Overrides{})

	if _, err := campaign.GenerateLinePrompt(context.Background(), fake, p, spec, "Lookalike"); err != nil {
		t.Fatalf("GenerateLinePrompt: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("completer called %d times, want 1", len(fake.calls))
	}
	user := fake.calls[0]

	landmarks := []string{
		`la campaña "Lookalike"`,
		"CLIENT_PROFILE:",
		"LINE_SPEC:",
		"Fuentes que puede usar la persona que ejecuta el prompt",
		"Ejemplos de salidas válidas",
		"1. ",
	}
	for _, landmark := range landmarks {
		if !strings.Contains(user, landmark) {
			t.Errorf("user message missing landmark %q", landmark)
		}
	}

	// Resolved dependencies are dashed lines; the free-text Industrial
	// Data source survives resolution.
	if !strings.Contains(user, "- "+linespec.DepIndustrialData) {
		t.Error("user message missing the Industrial Data dependency line")
	}
}

func TestGenerateLinePrompt_EmptyDependenciesFallback(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{}
	p := testProfile()
	spec := linespec.ResolvedLineSpec{
		LineID:   "synthetic",
		Examples: []string{"ejemplo"},
	}

	if _, err := campaign.GenerateLinePrompt(context.Background(), fake, p, spec, "Lookalike"); err != nil {
		t.Fatalf("GenerateLinePrompt: %v", err)
	}

	if !strings.Contains(fake.calls[0], "- Industrial Data (fuente obligatoria en Genesy)") {
		t.Error("user message missing the fallback dependency line")
	}
}

// ---------------------------------------------------------------------------
// TestCampaigns - Listing order and membership
// ---------------------------------------------------------------------------

func TestCampaigns(t *testing.T) {
	t.Parallel()

	infos := campaign.Campaigns()

	want := []campaign.Info{
		{ID: campaign.IDLookalike, Name: "Lookalike"},
		{ID: campaign.IDCreativeIdeas, Name: "Creative Ideas"},
	}
	if fmt.Sprint(infos) != fmt.Sprint(want) {
		t.Errorf("Campaigns() = %v, want %v", infos, want)
	}

	for _, info := range infos {
		if !campaign.Known(info.ID) {
			t.Errorf("Known(%q) = false for a listed campaign", info.ID)
		}
	}
	if campaign.Known("lookalike ") || campaign.Known("") {
		t.Error("Known accepted an invalid id")
	}
}
