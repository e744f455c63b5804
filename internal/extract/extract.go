// Package extract builds a ClientProfile from a discovery-call
// transcript packet using the completion service and a fixed extraction
// schema. This is the only place a profile is created; everything
// downstream treats it as immutable.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/profile"
)

// ErrInvalidProfile indicates the model's JSON did not match the
// extraction schema. Fatal for the request; never repaired or
// re-prompted.
var ErrInvalidProfile = errors.New("extracted profile failed validation")

// ErrEmptyTranscript indicates the packet carried no transcript text.
var ErrEmptyTranscript = errors.New("transcript is required")

// Packet is the raw input for one extraction: the transcript plus
// whatever context the caller collected.
type Packet struct {
	ID         string
	Transcript string
	ClientName string
	Website    string
	Notes      string
}

const extractorSystem = "Eres un asistente que extrae perfiles de cliente en formato JSON exacto."

// wireProfile mirrors the JSON schema requested from the model. Nulls
// decode to zero values; wrong types fail the unmarshal and surface as
// ErrInvalidProfile.
type wireProfile struct {
	Offer      string   `json:"offer"`
	ValueProps []string `json:"value_props"`
	ICP        struct {
		CompanyTypes []string `json:"company_types"`
		BuyerRoles   []string `json:"buyer_roles"`
	} `json:"icp"`
	CaseStudy struct {
		Name             string   `json:"name"`
		Industry         string   `json:"industry"`
		CompanySize      string   `json:"company_size"`
		SimilarCompanies []string `json:"similar_companies"`
		Problem          string   `json:"problem"`
		Solution         string   `json:"solution"`
		Phases           []string `json:"phases"`
		Results          struct {
			General []string `json:"general"`
			Numeric []string `json:"numeric"`
		} `json:"results"`
	} `json:"case_study"`
	ProofPoints []string `json:"proof_points"`
	Constraints struct {
		Tone     string `json:"tone"`
		Language string `json:"language"`
	} `json:"constraints"`
	ClientSummary string `json:"client_summary"`
	BuyerPersona  string `json:"buyer_persona"`
}

// ClientProfile extracts a structured profile from the packet.
//
// Post-processing applies the documented invariants: every list is
// normalized and present, empty proof points are back-filled from the
// case study results (general then numeric), and tone/language receive
// their defaults.
func ClientProfile(ctx context.Context, c completion.Completer, pkt Packet) (profile.ClientProfile, error) {
	if strings.TrimSpace(pkt.Transcript) == "" {
		return profile.ClientProfile{}, ErrEmptyTranscript
	}

	raw, err := c.CompleteJSON(ctx, extractorSystem, extractionPrompt(pkt))
	if err != nil {
		return profile.ClientProfile{}, fmt.Errorf("profile extraction: %w", err)
	}

	var wire wireProfile
	if err := json.Unmarshal(raw, &wire); err != nil {
		return profile.ClientProfile{}, fmt.Errorf("%s: %w", err, ErrInvalidProfile)
	}

	p := profile.ClientProfile{
		ID:            pkt.ID,
		Offer:         strings.TrimSpace(wire.Offer),
		ValueProps:    wire.ValueProps,
		ProofPoints:   wire.ProofPoints,
		ClientSummary: strings.TrimSpace(wire.ClientSummary),
		BuyerPersona:  strings.TrimSpace(wire.BuyerPersona),
	}
	p.ICP.CompanyTypes = wire.ICP.CompanyTypes
	p.ICP.BuyerRoles = wire.ICP.BuyerRoles
	p.CaseStudy.Name = strings.TrimSpace(wire.CaseStudy.Name)
	p.CaseStudy.Industry = strings.TrimSpace(wire.CaseStudy.Industry)
	p.CaseStudy.CompanySize = strings.TrimSpace(wire.CaseStudy.CompanySize)
	p.CaseStudy.SimilarCompanies = wire.CaseStudy.SimilarCompanies
	p.CaseStudy.Problem = strings.TrimSpace(wire.CaseStudy.Problem)
	p.CaseStudy.Solution = strings.TrimSpace(wire.CaseStudy.Solution)
	p.CaseStudy.Phases = wire.CaseStudy.Phases
	p.CaseStudy.Results.General = wire.CaseStudy.Results.General
	p.CaseStudy.Results.Numeric = wire.CaseStudy.Results.Numeric

	p = p.Normalized()

	// Proof points default to the case study outcomes when the model
	// returned none.
	if len(p.ProofPoints) == 0 {
		backfill := make([]string, 0, len(p.CaseStudy.Results.General)+len(p.CaseStudy.Results.Numeric))
		backfill = append(backfill, p.CaseStudy.Results.General...)
		backfill = append(backfill, p.CaseStudy.Results.Numeric...)
		p.ProofPoints = backfill
	}

	p.Constraints.Tone = strings.TrimSpace(wire.Constraints.Tone)
	if p.Constraints.Tone == "" {
		p.Constraints.Tone = profile.DefaultTone
	}
	p.Constraints.Language = strings.TrimSpace(wire.Constraints.Language)
	if p.Constraints.Language == "" {
		p.Constraints.Language = profile.DefaultLanguage
	}

	return p, nil
}

// extractionPrompt assembles the user message with the fixed schema and
// all available context. Absent inputs are marked explicitly so the
// model never mistakes missing context for empty context.
func extractionPrompt(pkt Packet) string {
	block := func(s, placeholder string) string {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
		return placeholder
	}

	return fmt.Sprintf(`Misión
Extraer de la transcripción de una reunión comercial la información necesaria para construir campañas de prospección (Lookalike, Creative Ideas) en Genesy.

Instrucciones
- Lee la transcripción completa (entre comillas triples) y cruza con las notas/contexto.
- Devuelve un JSON con las claves exactas:
  - offer: cadena.
  - value_props: array de cadenas (propuestas de valor clave).
  - icp: objeto con company_types[] y buyer_roles[].
  - case_study: objeto con
      name,
      industry,
      company_size,
      similar_companies[] (empresas parecidas),
      problem (reto detectado),
      solution (cómo lo resolvimos),
      phases[] (pasos o etapas relevantes),
      results: { general[] (logros cualitativos), numeric[] (métricas o cifras importantes) }.
  - proof_points: array de frases resumidas (opcional, puedes dejarlo vacío si no aporta valor adicional).
  - constraints: { tone, language }.
  - client_summary: resumen operativo amplio (máximo 150 palabras, frases simples).
  - buyer_persona: descripción breve del buyer persona principal (rol, sector, pains).
- Cuando un dato no exista, devuelve null (para cadenas) o array vacío.
- No inventes: solo usa información presente en la transcripción, notas o web.

Contexto adicional
Sitio web: %s
Notas internas: %s

Transcripción
"""%s"""

Output
Solo el JSON solicitado, sin comentarios.`,
		block(pkt.Website, "NO WEBSITE PROVIDED"),
		block(pkt.Notes, "NO NOTES PROVIDED"),
		block(pkt.Transcript, "NO TRANSCRIPT PROVIDED"))
}
