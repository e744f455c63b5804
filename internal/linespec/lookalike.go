package linespec

import "github.com/velora-labs/promptforge/internal/fieldref"

// DepIndustrialData is the free-text dependency naming the prospect data
// source available at send time. It is not a field-reference token and
// passes through dependency resolution verbatim.
const DepIndustrialData = "Industrial Data (dato del prospecto disponible en Genesy en tiempo de envío)"

// Line IDs referenced from code (campaign overrides, tests).
const (
	LineIDLookalikeResults = "LL_E1_L4_resultados"
)

// Lookalike returns the line specifications for the Lookalike campaign,
// in email order.
func Lookalike() []LineSpec {
	out := make([]LineSpec, len(lookalikeSpecs))
	copy(out, lookalikeSpecs)
	return out
}

var lookalikeSpecs = []LineSpec{
	{
		LineID:         "LL_E1_L2_conexion_caso",
		Name:           "Lookalike Email 1 - Conexión con caso de éxito",
		TargetVariable: "Lookalike | E1.1",
		Structure:      `Empieza exactamente con "Vi en vuestra web que {X}" y termina mencionando a un cliente real {Y}.`,
		Rules: Rules{
			MaxWords:    27,
			Tone:        "cercano y directo",
			NoInvention: true,
			Style:       "lenguaje sencillo, sin tecnicismos",
		},
		Instructions: []string{
			"Usa Industrial Data para resumir qué hace el prospecto en {X} en 10-14 palabras.",
			"Introduce el caso de éxito con el nombre completo y matices clave (industria, tamaño, empresas similares) presentes en el contexto.",
			"Alinea el gancho con el problema y la solución documentados del caso para que la comparación sea creíble.",
			`Mantén la estructura exacta "Vi en vuestra web que {X}, y me vino a la cabeza uno de nuestros clientes, {Y}".`,
			"No superes las 27 palabras totales y mantén un tono conversacional cercano.",
			"Evita adjetivos grandilocuentes; prioriza verbos y sustantivos concretos.",
		},
		Examples: []string{
			"Vi en vuestra web que hacéis cemento para infraestructuras marinas, y me vino a la cabeza uno de nuestros clientes, Cemex",
			"Vi en vuestra web que tenéis un software para autónomos de gestión de impuestos, y me vino a la cabeza uno de nuestros clientes, Declarando",
			"Vi en vuestra web que sois una agencia de marketing digital especializada en contenidos, y me vino a la cabeza uno de nuestros clientes, Código Media",
		},
		DependsOn: []string{
			DepIndustrialData,
			fieldref.CaseName,
			fieldref.CaseIndustry,
			fieldref.CaseCompanySize,
			fieldref.CaseSimilarCompanies,
			fieldref.CaseProblem,
			fieldref.CaseSolution,
			fieldref.CaseResultsGeneral,
			fieldref.CaseResultsNumeric,
		},
	},
	{
		LineID:         "LL_E1_L3_problema_solucion",
		Name:           "Lookalike Email 1 - Problema resuelto para el caso",
		TargetVariable: "Lookalike | E1.2",
		Structure:      "Frase que cuenta qué reto tenía el caso de éxito y cómo se solucionó con nuestra ayuda.",
		Rules: Rules{
			MaxWords:    32,
			Tone:        "cercano y claro",
			NoInvention: true,
			Style:       "frases cortas, foco en acción",
		},
		Instructions: []string{
			"Describe el reto concreto identificado para el caso de éxito (usa el problema descrito en el contexto).",
			"Explica cómo lo resolvisteis con vuestra oferta, apoyándote en la solución documentada.",
			"Si las fases ayudan a entender la historia, menciónalas brevemente.",
			"Prioriza verbos de acción y mantén un tono cercano, sin tecnicismos.",
			"No excedas las 32 palabras.",
		},
		Examples: []string{
			"Con Cemex pasaba que el producto era tan técnico que costaba venderlo, así que hicimos infografías y vídeos para explicarlo claro y aumentar ventas",
			"En Declarando querían captar más clientes sin contratar nuevos vendedores, y lo lograron con nuestro agente de IA que automatizaba las demos",
			"En Código Media conseguían cada vez menos clientes por inbound, así que implementamos un sistema de prospección que genera 10 reuniones al mes",
		},
		DependsOn: []string{
			fieldref.CaseProblem,
			fieldref.CaseSolution,
			fieldref.CasePhases,
			fieldref.Offer,
		},
	},
	{
		LineID:         LineIDLookalikeResults,
		Name:           "Lookalike Email 1 - Resultados conseguidos",
		TargetVariable: "Lookalike | E1.3",
		Structure:      "Frase breve que destaca resultados generales y, si existen, cifras concretas.",
		Rules: Rules{
			MaxWords:    26,
			Tone:        "positivo y tangible",
			NoInvention: true,
			Style:       "menciona métricas o impactos claros",
		},
		Instructions: []string{
			"Prioriza métricas concretas (porcentajes, volúmenes, cifras) presentes en los resultados del caso.",
			"Si no hay datos numéricos, resume un logro cualitativo convincente alineado con el caso.",
			"Mantén la conexión con el caso mencionado en las líneas anteriores y evita superlativos vacíos.",
			"No superes las 26 palabras.",
		},
		Examples: []string{
			"El resultado fue un aumento de un 15% de ventas que supuso unos cuantos cientos miles de euros",
			"La IA logró hacer 100 demos al mes con un ratio de conversión del 60%",
			"De esas 10 reuniones cierran un 20% de clientes al mes, lo que hizo duplicar su facturación",
		},
		DependsOn: []string{
			fieldref.CaseResultsGeneral,
			fieldref.CaseResultsNumeric,
		},
	},
	{
		LineID:         "LL_E1_L5_cta_lookalike",
		Name:           "Lookalike Email 1 - CTA de invitación",
		TargetVariable: "Lookalike | E1.4",
		Structure:      `Pregunta que empieza con "Si te cuento" y plantea el mensaje a testear.`,
		Rules: Rules{
			MaxWords:    25,
			Tone:        "cercano y conversacional",
			NoInvention: true,
			Style:       "pregunta corta con verbo de acción",
		},
		Instructions: []string{
			`Empieza siempre con "Si te cuento" seguido del beneficio principal obtenido por el caso de éxito.`,
			"Conecta ese beneficio con la oferta o expertise propia descrita en el contexto.",
			`Cierra con una pregunta tipo "¿ves útil verlo?" o variante breve equivalente.`,
			"No superes las 25 palabras, mantén el tono cercano y coherente con el caso mencionado.",
		},
		Examples: []string{
			"Si te cuento qué hicimos para que lo explicaran fácil y vendieran más, ¿ves útil verlo?",
			"Si te cuento cómo lo implementaron para conseguir estos resultados, ¿ves útil echarle un vistazo?",
			"Si te cuento qué proceso seguimos para captar nuevos clientes, ¿ves útil echarle un vistazo?",
		},
		DependsOn: []string{
			fieldref.Offer,
			fieldref.ValueProps,
			fieldref.CaseResultsGeneral,
			fieldref.CaseResultsNumeric,
		},
	},
	{
		LineID:         "LL_E2_L1_gancho_contexto",
		Name:           "Lookalike Email 2 - Gancho con caso o competencia",
		TargetVariable: "Lookalike | E2.1",
		Structure:      `Empieza con "He visto que" y termina con "me pregunté" introduciendo cómo el prospecto gestiona el reto que resolvió nuestro caso de éxito.`,
		Rules: Rules{
			MaxWords:    24,
			Tone:        "cercano y directo",
			NoInvention: true,
			Style:       "frase conversacional con una pregunta implícita",
		},
		Instructions: []string{
			`Abre con "He visto que" seguido de un dato real sobre el prospecto tomado de Industrial Data.`,
			"Menciona el caso de éxito principal descrito en el contexto y conéctalo con ese reto.",
			`Cierra con "y me pregunté cómo" seguido de la responsabilidad del prospecto respecto a dicho reto.`,
			"Si no hay caso explícito, usa el sector o testimonios recogidos en Industrial Data como referencia.",
			"Limita la frase a 24 palabras, tono cercano y directo.",
		},
		Examples: []string{
			"He visto que trabajasteis con Hurre en UniDeck y me pregunté cómo apoyáis al equipo comercial para captar más clientes así",
			"He visto que publicasteis un caso con Declarando y me pregunté cómo mantenéis ese ritmo sin ampliar el equipo de ventas",
		},
		DependsOn: []string{
			DepIndustrialData,
			fieldref.CaseName,
			fieldref.CaseProblem,
			fieldref.CaseSolution,
		},
	},
	{
		LineID:         "LL_E2_L2_aporte_1",
		Name:           "Lookalike Email 2 - Aporte clave #1",
		TargetVariable: "Lookalike | E2.2",
		Structure:      "Elemento en formato lista que describe una acción específica ejecutada para el caso de éxito.",
		Rules: Rules{
			MaxWords:    12,
			Tone:        "práctico y concreto",
			NoInvention: true,
			Style:       `comienza con un símbolo "•" y verbo en infinitivo`,
		},
		Instructions: []string{
			`Empieza con "•" seguido de un verbo en infinitivo que resuma la acción ejecutada.`,
			"Describe una iniciativa concreta aplicada en el caso de éxito (materiales, automatizaciones, procesos, etc.).",
			"Usa información literal del contexto del cliente para garantizar la veracidad.",
			"No repitas la misma idea en las siguientes viñetas.",
		},
		Examples: []string{
			"• Crear infografías que simplifican el producto",
			"• Automatizar demos comerciales con IA",
		},
		DependsOn: []string{
			fieldref.CaseSolution,
			fieldref.CasePhases,
			fieldref.Offer,
		},
	},
	{
		LineID:         "LL_E2_L3_aporte_2",
		Name:           "Lookalike Email 2 - Aporte clave #2",
		TargetVariable: "Lookalike | E2.3",
		Structure:      "Segundo elemento en lista que refuerza la solución dada al caso de éxito.",
		Rules: Rules{
			MaxWords:    12,
			Tone:        "práctico y concreto",
			NoInvention: true,
			Style:       `comienza con "•" y verbo en infinitivo`,
		},
		Instructions: []string{
			`Inicia con "•" y un verbo en infinitivo diferente al de la viñeta anterior.`,
			"Añade otra acción complementaria clave del caso de éxito (contenidos, procesos, soportes, automatizaciones, etc.).",
			"Mantén la coherencia con la oferta y evita repetir ideas ya usadas.",
		},
		Examples: []string{
			"• Diseñar materiales para ferias que destacan frente a competidores",
			"• Documentar el guion de ventas para repetir las demos ganadoras",
		},
		DependsOn: []string{
			fieldref.CaseSolution,
			fieldref.CasePhases,
			fieldref.ValueProps,
		},
	},
	{
		LineID:         "LL_E2_L4_aporte_3",
		Name:           "Lookalike Email 2 - Aporte clave #3",
		TargetVariable: "Lookalike | E2.4",
		Structure:      "Tercer elemento en lista que remata con un beneficio operativo.",
		Rules: Rules{
			MaxWords:    12,
			Tone:        "práctico y concreto",
			NoInvention: true,
			Style:       `comienza con "•" y verbo en infinitivo`,
		},
		Instructions: []string{
			`Empieza con "•" y usa un verbo en infinitivo distinto a los anteriores.`,
			"Remata con un beneficio operativo claro logrado en el caso (ej. acelerar ventas, reducir retrabajos).",
			"Redacta la idea en pocas palabras y aporta un ángulo nuevo respecto a las viñetas previas.",
		},
		Examples: []string{
			"• Entrenar al postventa para responder dudas técnicas",
			"• Integrar dashboards para seguir cada oportunidad",
		},
		DependsOn: []string{
			fieldref.CaseSolution,
			fieldref.CaseResultsGeneral,
			fieldref.CaseResultsNumeric,
		},
	},
	{
		LineID:         "LL_E2_L5_cta",
		Name:           "Lookalike Email 2 - CTA de demostración",
		TargetVariable: "Lookalike | E2.5",
		Structure:      `Pregunta breve que empieza con "Si te cuento" e invita a conocer el proceso.`,
		Rules: Rules{
			MaxWords:    22,
			Tone:        "cercano y no invasivo",
			NoInvention: true,
			Style:       `pregunta condicional con cierre "¿ves útil...?"`,
		},
		Instructions: []string{
			`Arranca con "Si te cuento" seguido del beneficio principal obtenido por el caso de éxito citado.`,
			`Termina con "¿ves útil echarle un vistazo?" u otra variante breve equivalente.`,
			"Adapta el beneficio al sector del prospecto y al caso mencionado.",
			"No excedas las 22 palabras y mantén el tono conversacional.",
		},
		Examples: []string{
			"Si te cuento cómo los ayudamos a vender más rápido, ¿ves útil echarle un vistazo?",
			"Si te cuento qué hicimos para multiplicar sus demos útiles, ¿ves útil verlo?",
		},
		DependsOn: []string{
			fieldref.Offer,
			fieldref.CaseResultsGeneral,
			fieldref.CaseResultsNumeric,
			fieldref.ValueProps,
		},
	},
	{
		LineID:         "LL_E3_L1_recordatorio",
		Name:           "Lookalike Email 3 - Recordatorio de caso",
		TargetVariable: "Lookalike | E3.1",
		Structure:      "Frase que vincula al prospecto con el caso de éxito usando un cierre variado.",
		Rules: Rules{
			MaxWords:    20,
			Tone:        "cercano y directo",
			NoInvention: true,
			Style:       "elige aleatoriamente “pensé que podía seros útil” o “creí que podía ser útil”",
		},
		Instructions: []string{
			`Comienza con "Como" o "Ya que" para relacionar al prospecto con el caso de éxito citado en emails previos.`,
			"Menciona el nombre del caso de éxito y el sector compartido.",
			`Cierra usando una de estas opciones exactas (elige aleatoriamente): "pensé que podía seros útil" o "creí que podía ser útil".`,
			"Mantén la frase en un máximo de 20 palabras y sin tecnicismos.",
		},
		Examples: []string{
			"Como estáis en el mismo sector que Cemex, pensé que podía seros útil",
			"Ya que trabajáis retos similares a Declarando, creí que podía ser útil",
		},
		DependsOn: []string{
			fieldref.CaseName,
			fieldref.CaseIndustry,
		},
	},
	{
		LineID:         "LL_E3_L2_pregunta_seguimiento",
		Name:           "Lookalike Email 3 - Pregunta de seguimiento",
		TargetVariable: "Lookalike | E3.2",
		Structure:      "Pregunta corta que confirma si vio el correo anterior, con variación aleatoria.",
		Rules: Rules{
			MaxWords:    14,
			Tone:        "cercano y educado",
			NoInvention: true,
			Style:       "elige aleatoriamente entre dos formulaciones propuestas",
		},
		Instructions: []string{
			`Genera una pregunta directa utilizando una de estas opciones exactas (elige aleatoriamente): "¿Has leído el correo que te envié?" o "¿Has visto el email que te envié?".`,
			"Mantén el tono cercano, sin añadir justificaciones adicionales.",
			"No superes las 14 palabras.",
		},
		Examples: []string{
			"¿Has leído el correo que te envié?",
			"¿Has visto el email que te envié?",
		},
		DependsOn: []string{},
	},
}
