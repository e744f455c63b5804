package linespec

import (
	"strings"

	"github.com/velora-labs/promptforge/internal/profile"
)

// contextHeader opens every client context block.
const contextHeader = "Contexto del cliente (usa esta información literal, no nombres de variables):"

// BuildClientContext renders the profile into the canonical ordered
// block of context lines that prefixes every resolved instruction set.
// Empty fields are skipped; the emission order is fixed so identical
// profiles always produce identical prompt text.
func BuildClientContext(p profile.ClientProfile) []string {
	p = p.Normalized()

	context := []string{contextHeader}

	push := func(label, value string) {
		if value != "" {
			context = append(context, "- "+label+": "+value)
		}
	}
	pushJoined := func(label string, items []string, sep string) {
		if len(items) > 0 {
			context = append(context, "- "+label+": "+strings.Join(items, sep))
		}
	}
	pushNested := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		context = append(context, "- "+label+":")
		for _, item := range items {
			context = append(context, "  - "+item)
		}
	}

	push("Oferta principal", p.Offer)
	pushJoined("Value props clave", p.ValueProps, "; ")
	push("Resumen operativo", p.ClientSummary)
	push("Caso de éxito destacado", p.CaseStudy.Name)
	push("Industria del caso de éxito", p.CaseStudy.Industry)
	push("Tamaño del caso de éxito", p.CaseStudy.CompanySize)
	pushJoined("Empresas similares al caso", p.CaseStudy.SimilarCompanies, ", ")
	push("Problema del caso", p.CaseStudy.Problem)
	push("Cómo lo resolvimos", p.CaseStudy.Solution)
	pushNested("Fases clave del proyecto", p.CaseStudy.Phases)
	pushNested("Resultados generales del caso", p.CaseStudy.Results.General)
	pushNested("Resultados numéricos del caso", p.CaseStudy.Results.Numeric)
	pushNested("Casos de éxito y resultados relevantes", p.ProofPoints)
	pushJoined("Tipos de empresa objetivo", p.ICP.CompanyTypes, ", ")
	pushJoined("Roles decisores clave", p.ICP.BuyerRoles, ", ")
	push("Tono preferido", p.Constraints.Tone)
	push("Idioma requerido", p.Constraints.Language)
	push("Buyer persona principal", p.BuyerPersona)

	return context
}
