package fieldref

import (
	"github.com/velora-labs/promptforge/internal/profile"
)

// scalarSummary renders "label: value" or the fallback sentence when
// value is empty.
func scalarSummary(label, value, fallback string) string {
	if value == "" {
		return fallback
	}
	return label + ": " + value
}

// listSummary renders "label:\n• a\n• b" or the fallback sentence when
// the list normalizes to nothing.
func listSummary(label string, items []string, fallback string) string {
	formatted := profile.FormatList(items)
	if formatted == "" {
		return fallback
	}
	return label + ":\n" + formatted
}

// definitions is the total mapping from token to (phrase, resolver).
// Every token in tokenOrder has an entry; the two invariants are checked
// by tests.
var definitions = map[string]definition{
	ProofPoints: {
		phrase: "los resultados y casos de éxito listados en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Casos de éxito y resultados del cliente", p.ProofPoints,
				"Casos de éxito y resultados del cliente: no se aportaron datos específicos")
		},
	},
	ValueProps: {
		phrase: "las value props descritas en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Value props del cliente", p.ValueProps,
				"Value props del cliente: no registradas")
		},
	},
	Offer: {
		phrase: "la oferta descrita en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Oferta del cliente", p.Offer,
				"Oferta del cliente: pendiente de definir")
		},
	},
	ICPCompanyTypes: {
		phrase: "los tipos de empresa objetivo descritos en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Tipos de empresa objetivo", p.ICP.CompanyTypes,
				"Tipos de empresa objetivo: no detallados")
		},
	},
	ICPBuyerRoles: {
		phrase: "los roles decisores descritos en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Roles decisores objetivo", p.ICP.BuyerRoles,
				"Roles decisores objetivo: no indicados")
		},
	},
	ClientSummary: {
		phrase: "el resumen del cliente indicado en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Resumen operativo del cliente", p.ClientSummary,
				"Resumen operativo del cliente: no disponible en la discovery")
		},
	},
	ConstraintsTone: {
		phrase: "el tono indicado en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Tono preferido", p.Constraints.Tone,
				"Tono preferido: no especificado")
		},
	},
	ConstraintsLanguage: {
		phrase: "el idioma indicado en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Idioma requerido", p.Constraints.Language,
				"Idioma requerido: no especificado")
		},
	},
	CaseName: {
		phrase: "el nombre del caso de éxito destacado",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Caso de éxito destacado", p.CaseStudy.Name,
				"Caso de éxito destacado: no identificado")
		},
	},
	CaseIndustry: {
		phrase: "la industria del caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Industria del caso de éxito", p.CaseStudy.Industry,
				"Industria del caso de éxito: no indicada")
		},
	},
	CaseCompanySize: {
		phrase: "el tamaño de la empresa del caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Tamaño de empresa del caso", p.CaseStudy.CompanySize,
				"Tamaño de empresa del caso: no indicado")
		},
	},
	CaseSimilarCompanies: {
		phrase: "las empresas similares al caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Empresas similares al caso", p.CaseStudy.SimilarCompanies,
				"Empresas similares al caso: no mencionadas")
		},
	},
	CaseProblem: {
		phrase: "el problema detectado en el caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Problema resuelto", p.CaseStudy.Problem,
				"Problema resuelto: no detallado")
		},
	},
	CaseSolution: {
		phrase: "la solución aplicada en el caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Cómo se resolvió", p.CaseStudy.Solution,
				"Cómo se resolvió: no especificado")
		},
	},
	CasePhases: {
		phrase: "las fases clave que siguió el caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Fases clave del proyecto", p.CaseStudy.Phases,
				"Fases clave del proyecto: no descritas")
		},
	},
	CaseResultsGeneral: {
		phrase: "los resultados generales del caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Resultados generales del caso", p.CaseStudy.Results.General,
				"Resultados generales del caso: no registrados")
		},
	},
	CaseResultsNumeric: {
		phrase: "los resultados numéricos del caso de éxito",
		summarize: func(p profile.ClientProfile) string {
			return listSummary("Resultados numéricos del caso", p.CaseStudy.Results.Numeric,
				"Resultados numéricos del caso: no disponibles")
		},
	},
	BuyerPersona: {
		phrase: "el buyer persona descrito en el contexto del cliente",
		summarize: func(p profile.ClientProfile) string {
			return scalarSummary("Buyer persona principal", p.BuyerPersona,
				"Buyer persona principal: no definido")
		},
	},
}
