// Package campaign turns a client profile into a prompt package: one
// fully-rendered natural-language prompt per line of a campaign email
// sequence, ready to hand to the downstream content-generation step.
package campaign

import (
	"errors"

	"github.com/velora-labs/promptforge/internal/linespec"
	"github.com/velora-labs/promptforge/internal/profile"
)

// ErrUnknownCampaign indicates an unrecognized campaign id.
var ErrUnknownCampaign = errors.New("unknown campaign")

// Campaign ids accepted by Build and the HTTP layer.
const (
	IDLookalike     = "lookalike"
	IDCreativeIdeas = "creative-ideas"
)

// PromptPackage is the ordered collection of rendered prompts for all
// lines of one campaign. One package exists per (profile, campaign)
// pair.
type PromptPackage struct {
	Campaign string   `json:"campaign"`
	Prompts  []Prompt `json:"prompts"`
}

// Prompt is one rendered line prompt. DependsOn keeps the raw
// dependency entries from the spec table (tokens included) so the
// package stays traceable to its inputs.
type Prompt struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	TargetVariable string   `json:"target_variable"`
	PromptText     string   `json:"prompt_text"`
	DependsOn      []string `json:"depends_on"`
}

// Info identifies a supported campaign for listing endpoints.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// definition binds a campaign id to its spec table and its per-line
// override hook.
type definition struct {
	id    string
	name  string
	specs func() []linespec.LineSpec
	// overrides computes data-dependent instruction injections for one
	// line. Returns the zero value for lines without overrides.
	overrides func(spec linespec.LineSpec, p profile.ClientProfile) linespec.Overrides
}

// campaignOrder fixes the listing order.
var campaignOrder = []string{IDLookalike, IDCreativeIdeas}

var campaigns = map[string]definition{
	IDLookalike: {
		id:        IDLookalike,
		name:      "Lookalike",
		specs:     linespec.Lookalike,
		overrides: lookalikeOverrides,
	},
	IDCreativeIdeas: {
		id:        IDCreativeIdeas,
		name:      "Creative Ideas",
		specs:     linespec.CreativeIdeas,
		overrides: noOverrides,
	},
}

// Campaigns lists the supported campaigns in canonical order.
func Campaigns() []Info {
	infos := make([]Info, 0, len(campaignOrder))
	for _, id := range campaignOrder {
		def := campaigns[id]
		infos = append(infos, Info{ID: def.id, Name: def.name})
	}
	return infos
}

// Known reports whether id names a supported campaign.
func Known(id string) bool {
	_, ok := campaigns[id]
	return ok
}

func noOverrides(linespec.LineSpec, profile.ClientProfile) linespec.Overrides {
	return linespec.Overrides{}
}

// lookalikeOverrides injects the computed proof-point block into the
// results line. When the profile carries proof points they are listed
// literally; otherwise a fixed fallback instruction asks for a
// qualitative result instead. The static spec table is never mutated.
func lookalikeOverrides(spec linespec.LineSpec, p profile.ClientProfile) linespec.Overrides {
	if spec.LineID != linespec.LineIDLookalikeResults {
		return linespec.Overrides{}
	}

	proofPoints := profile.NormalizeList(p.ProofPoints)

	block := "No se detectaron métricas concretas en los proof points; redacta un resultado cualitativo convincente alineado con el client_summary."
	if len(proofPoints) > 0 {
		block = "Trabaja específicamente con estos resultados reales del cliente:\n" +
			profile.FormatListWith(proofPoints, "-")
	}

	return linespec.Overrides{
		Instructions: []string{
			"Revisa los datos proporcionados en el contexto del cliente para mantener el tono y el contenido correctos.",
			block,
			"Redacta una frase positiva y tangible que resuma los resultados conseguidos, utilizando cifras exactas si existen.",
			"Mantén un lenguaje sencillo y directo, evitando superlativos vacíos.",
			"Limita el texto a un máximo de 26 palabras.",
			"Asegúrate de que el tono sea natural y directo, siguiendo el tono indicado en el contexto del cliente.",
		},
	}
}
