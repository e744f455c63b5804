package linespec_test

// Notes:
// - Black-box testing: we test through the public API only
// - Spec table content (exact Spanish copy) is deliberately not pinned;
//   we verify the structural invariants instead: unique line ids, known
//   or free-text dependencies, non-empty instructions and examples
// - Context block emission order IS pinned: it is part of the prompt
//   contract and must stay deterministic

import (
	"reflect"
	"strings"
	"testing"

	"github.com/velora-labs/promptforge/internal/fieldref"
	"github.com/velora-labs/promptforge/internal/linespec"
	"github.com/velora-labs/promptforge/internal/profile"
)

func sampleProfile() profile.ClientProfile {
	return profile.ClientProfile{
		Offer:      "automatización de prospección B2B",
		ValueProps: []string{"ahorro de tiempo", "más reuniones"},
		ICP: profile.ICP{
			CompanyTypes: []string{"saas", "agencias"},
			BuyerRoles:   []string{"CEO", "Head of Sales"},
		},
		CaseStudy: profile.CaseStudy{
			Name:             "Cemex",
			Industry:         "construcción",
			CompanySize:      "5000+",
			SimilarCompanies: []string{"Holcim"},
			Problem:          "producto técnico difícil de vender",
			Solution:         "infografías y vídeos explicativos",
			Phases:           []string{"descubrimiento", "producción"},
			Results: profile.CaseResults{
				General: []string{"mensaje más claro"},
				Numeric: []string{"+20% ventas"},
			},
		},
		ProofPoints:   []string{"+30% reply rate"},
		Constraints:   profile.Constraints{Tone: "directo", Language: "es-ES"},
		ClientSummary: "hacen cemento especializado",
		BuyerPersona:  "director comercial",
	}
}

// ---------------------------------------------------------------------------
// TestBuildClientContext - Ordered emission, empty fields skipped
// ---------------------------------------------------------------------------

func TestBuildClientContext_FullProfile(t *testing.T) {
	t.Parallel()

	got := linespec.BuildClientContext(sampleProfile())

	want := []string{
		"Contexto del cliente (usa esta información literal, no nombres de variables):",
		"- Oferta principal: automatización de prospección B2B",
		"- Value props clave: ahorro de tiempo; más reuniones",
		"- Resumen operativo: hacen cemento especializado",
		"- Caso de éxito destacado: Cemex",
		"- Industria del caso de éxito: construcción",
		"- Tamaño del caso de éxito: 5000+",
		"- Empresas similares al caso: Holcim",
		"- Problema del caso: producto técnico difícil de vender",
		"- Cómo lo resolvimos: infografías y vídeos explicativos",
		"- Fases clave del proyecto:",
		"  - descubrimiento",
		"  - producción",
		"- Resultados generales del caso:",
		"  - mensaje más claro",
		"- Resultados numéricos del caso:",
		"  - +20% ventas",
		"- Casos de éxito y resultados relevantes:",
		"  - +30% reply rate",
		"- Tipos de empresa objetivo: saas, agencias",
		"- Roles decisores clave: CEO, Head of Sales",
		"- Tono preferido: directo",
		"- Idioma requerido: es-ES",
		"- Buyer persona principal: director comercial",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildClientContext mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestBuildClientContext_EmptyProfile(t *testing.T) {
	t.Parallel()

	got := linespec.BuildClientContext(profile.ClientProfile{})

	if len(got) != 1 {
		t.Fatalf("empty profile context has %d lines, want 1 (header only): %q", len(got), got)
	}
	if !strings.HasPrefix(got[0], "Contexto del cliente") {
		t.Errorf("header = %q", got[0])
	}
}

func TestBuildClientContext_Deterministic(t *testing.T) {
	t.Parallel()

	p := sampleProfile()

	first := linespec.BuildClientContext(p)
	second := linespec.BuildClientContext(p)

	if !reflect.DeepEqual(first, second) {
		t.Error("BuildClientContext is not deterministic for identical input")
	}
}

// ---------------------------------------------------------------------------
// TestWithClientContext - Override merge and resolution
// ---------------------------------------------------------------------------

func TestWithClientContext_NoOverrides(t *testing.T) {
	t.Parallel()

	spec := linespec.LineSpec{
		LineID:       "test_line",
		Structure:    "estructura base",
		Instructions: []string{"Apóyate en client_profile.offer para el gancho."},
		DependsOn:    []string{fieldref.Offer, linespec.DepIndustrialData},
	}
	p := sampleProfile()

	resolved := linespec.WithClientContext(spec, p, linespec.Overrides{})

	if resolved.Structure != "estructura base" {
		t.Errorf("Structure = %q, want base", resolved.Structure)
	}

	// Instructions = context block + sanitized spec instructions.
	contextLen := len(linespec.BuildClientContext(p))
	if len(resolved.Instructions) != contextLen+1 {
		t.Fatalf("Instructions has %d entries, want %d", len(resolved.Instructions), contextLen+1)
	}
	last := resolved.Instructions[len(resolved.Instructions)-1]
	if strings.Contains(last, "client_profile") {
		t.Errorf("instruction not sanitized: %q", last)
	}
	if !strings.Contains(last, "la oferta descrita en el contexto del cliente") {
		t.Errorf("instruction missing phrase: %q", last)
	}

	// Dependencies: token summarized, free text untouched.
	wantDeps := []string{
		"Oferta del cliente: automatización de prospección B2B",
		linespec.DepIndustrialData,
	}
	if !reflect.DeepEqual(resolved.DependsOn, wantDeps) {
		t.Errorf("DependsOn = %q, want %q", resolved.DependsOn, wantDeps)
	}
}

func TestWithClientContext_Overrides(t *testing.T) {
	t.Parallel()

	spec := linespec.LineSpec{
		LineID:       "test_line",
		Structure:    "estructura base",
		Rules:        linespec.Rules{MaxWords: 20},
		Instructions: []string{"instrucción original"},
		DependsOn:    []string{fieldref.Offer},
	}
	p := sampleProfile()

	tests := []struct {
		name  string
		ov    linespec.Overrides
		check func(t *testing.T, r linespec.ResolvedLineSpec)
	}{
		{
			name: "instructions replaced",
			ov:   linespec.Overrides{Instructions: []string{"instrucción nueva"}},
			check: func(t *testing.T, r linespec.ResolvedLineSpec) {
				last := r.Instructions[len(r.Instructions)-1]
				if last != "instrucción nueva" {
					t.Errorf("last instruction = %q, want override", last)
				}
			},
		},
		{
			name: "empty non-nil instructions is explicit replacement",
			ov:   linespec.Overrides{Instructions: []string{}},
			check: func(t *testing.T, r linespec.ResolvedLineSpec) {
				contextLen := len(linespec.BuildClientContext(sampleProfile()))
				if len(r.Instructions) != contextLen {
					t.Errorf("Instructions has %d entries, want context only (%d)",
						len(r.Instructions), contextLen)
				}
			},
		},
		{
			name: "dependencies replaced",
			ov:   linespec.Overrides{DependsOn: []string{linespec.DepIndustrialData}},
			check: func(t *testing.T, r linespec.ResolvedLineSpec) {
				want := []string{linespec.DepIndustrialData}
				if !reflect.DeepEqual(r.DependsOn, want) {
					t.Errorf("DependsOn = %q, want %q", r.DependsOn, want)
				}
			},
		},
		{
			name: "structure replaced",
			ov:   linespec.Overrides{Structure: "estructura nueva"},
			check: func(t *testing.T, r linespec.ResolvedLineSpec) {
				if r.Structure != "estructura nueva" {
					t.Errorf("Structure = %q", r.Structure)
				}
			},
		},
		{
			name: "rules replaced",
			ov:   linespec.Overrides{Rules: &linespec.Rules{MaxWords: 10}},
			check: func(t *testing.T, r linespec.ResolvedLineSpec) {
				if r.Rules.MaxWords != 10 {
					t.Errorf("Rules.MaxWords = %d, want 10", r.Rules.MaxWords)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.check(t, linespec.WithClientContext(spec, p, tt.ov))
		})
	}
}

func TestWithClientContext_DoesNotMutateSpec(t *testing.T) {
	t.Parallel()

	spec := linespec.LineSpec{
		LineID:       "test_line",
		Instructions: []string{"Usa client_profile.offer."},
		DependsOn:    []string{fieldref.Offer},
	}

	_ = linespec.WithClientContext(spec, sampleProfile(), linespec.Overrides{})

	if spec.Instructions[0] != "Usa client_profile.offer." {
		t.Error("WithClientContext mutated the spec's instructions")
	}
	if spec.DependsOn[0] != fieldref.Offer {
		t.Error("WithClientContext mutated the spec's dependencies")
	}
}

// ---------------------------------------------------------------------------
// TestCampaignTables - Structural invariants of the static spec tables
// ---------------------------------------------------------------------------

func TestCampaignTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		specs     []linespec.LineSpec
		wantLines int
	}{
		{"lookalike", linespec.Lookalike(), 11},
		{"creative ideas", linespec.CreativeIdeas(), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if len(tt.specs) != tt.wantLines {
				t.Fatalf("got %d line specs, want %d", len(tt.specs), tt.wantLines)
			}

			seen := make(map[string]bool)
			for _, spec := range tt.specs {
				if spec.LineID == "" || spec.Name == "" || spec.TargetVariable == "" {
					t.Errorf("spec %q has empty identity fields", spec.LineID)
				}
				if seen[spec.LineID] {
					t.Errorf("duplicate line id %q", spec.LineID)
				}
				seen[spec.LineID] = true

				if len(spec.Instructions) == 0 {
					t.Errorf("spec %q has no instructions", spec.LineID)
				}
				if len(spec.Examples) == 0 {
					t.Errorf("spec %q has no examples", spec.LineID)
				}

				// Dependencies are either enumerated tokens or free text
				// that must not look like a broken token.
				for _, dep := range spec.DependsOn {
					if strings.HasPrefix(dep, "client_profile") && !fieldref.Known(dep) {
						t.Errorf("spec %q has malformed token dependency %q", spec.LineID, dep)
					}
				}
			}
		})
	}
}

func TestLookalike_ContainsResultsLine(t *testing.T) {
	t.Parallel()

	for _, spec := range linespec.Lookalike() {
		if spec.LineID == linespec.LineIDLookalikeResults {
			return
		}
	}
	t.Fatalf("lookalike table has no %q line", linespec.LineIDLookalikeResults)
}

func TestCampaignTables_ReturnFreshSlices(t *testing.T) {
	t.Parallel()

	first := linespec.Lookalike()
	first[0] = linespec.LineSpec{}

	if linespec.Lookalike()[0].LineID == "" {
		t.Error("Lookalike() shares its backing array with callers")
	}
}
