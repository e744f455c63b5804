package linespec

import "github.com/velora-labs/promptforge/internal/fieldref"

// CreativeIdeas returns the line specifications for the Creative Ideas
// campaign, in email order.
func CreativeIdeas() []LineSpec {
	out := make([]LineSpec, len(creativeIdeasSpecs))
	copy(out, creativeIdeasSpecs)
	return out
}

var creativeIdeasSpecs = []LineSpec{
	{
		LineID:         "CI_E1_L2_apertura_web",
		Name:           "Creative Ideas Email 1 - Apertura desde web",
		TargetVariable: "HR-Industriales | Creative Ideas E1.1",
		Structure:      `Empieza con: "Viendo vuestra web vi que {X}…" y termina con dos puntos.`,
		Rules: Rules{
			MaxWords:    25,
			Tone:        "natural y conversacional",
			Ban:         []string{"líder global", "innovadoras", "®", "™", "©"},
			NoInvention: true,
		},
		Instructions: []string{
			`Empieza con la estructura exacta "Viendo vuestra web vi que {X}".`,
			"{X} es un resumen conciso de sectores o procesos clave detectados en Industrial Data (12–15 palabras).",
			"Usa lenguaje claro, sin corporativismos ni tecnicismos innecesarios.",
			"Alinea la frase con lo que ofrece nuestro cliente según el client_summary para que la transición hacia las ideas tenga sentido.",
			"Termina la frase con dos puntos finales para introducir la lista de ideas.",
			"Máximo 25 palabras en total.",
			"No inventes información que no esté en Industrial Data.",
		},
		Examples: []string{
			"Viendo vuestra web vi que fabricáis válvulas y skids para energía y petroquímica, con foco en soldadura TIG y calidad, y tengo un par de ideas:",
		},
		DependsOn: []string{
			DepIndustrialData,
			fieldref.ClientSummary,
		},
	},
	{
		LineID:         "CI_E1_L4_idea_1",
		Name:           "Creative Ideas Email 1 - Idea #1",
		TargetVariable: "HR-Industriales | Creative Ideas E1.2",
		Structure:      "Una frase con una idea de formación aplicable al contexto del prospecto.",
		Rules: Rules{
			MaxWords:    18,
			Tone:        "claro y práctico",
			Use:         []string{"offer", "data_sources.industrial_data"},
			NoInvention: true,
			Style:       "sustantivos y verbos simples",
		},
		Instructions: []string{
			"Redacta una sola frase (máximo 18 palabras).",
			"Propón una idea de formación interna que se pueda ejecutar con nuestra oferta actual.",
			"Menciona procesos concretos, productos o situaciones que aparezcan en Industrial Data.",
			"Asegúrate de que la idea sea algo que nuestro cliente pueda entregar según el client_summary.",
			`Usa lenguaje claro y directo; evita palabras vacías como "innovador" o "puntero".`,
			"No inventes información.",
		},
		Examples: []string{
			"Contenidos audiovisuales paso a paso sobre soldadura TIG segura para operarios recién incorporados.",
			"Guías de onboarding para pruebas hidrostáticas y control de calidad en válvulas.",
		},
		DependsOn: []string{
			fieldref.Offer,
			fieldref.ClientSummary,
			DepIndustrialData,
		},
	},
	{
		LineID:         "CI_E1_L5_idea_2",
		Name:           "Creative Ideas Email 1 - Idea #2",
		TargetVariable: "HR-Industriales | Creative Ideas E1.3",
		Structure:      "Una frase con una idea de formación aplicable al contexto del prospecto.",
		Rules: Rules{
			MaxWords:    18,
			Tone:        "claro y práctico",
			Use:         []string{"offer", "data_sources.industrial_data"},
			NoInvention: true,
			Style:       "sustantivos y verbos simples",
		},
		Instructions: []string{
			"Redacta una sola frase (máximo 18 palabras).",
			"Propón una idea de formación interna distinta a la anterior.",
			"Menciona procesos concretos o retos detectados en Industrial Data.",
			"Confirma que la idea encaja con la oferta descrita en el client_summary.",
			"Usa lenguaje claro y directo; evita palabras vacías.",
			"No inventes información.",
		},
		Examples: []string{
			"Checklists de seguridad sobre purga y presurización de líneas de gases para técnicos en campo.",
			"Microlecciones móviles sobre mantenimiento preventivo en equipos de envasado alimentario.",
		},
		DependsOn: []string{
			fieldref.Offer,
			fieldref.ClientSummary,
			DepIndustrialData,
		},
	},
	{
		LineID:         "CI_E1_L6_idea_3",
		Name:           "Creative Ideas Email 1 - Idea #3",
		TargetVariable: "HR-Industriales | Creative Ideas E1.4",
		Structure:      "Una frase con una idea de formación aplicable al contexto del prospecto.",
		Rules: Rules{
			MaxWords:    18,
			Tone:        "claro y práctico",
			Use:         []string{"offer", "data_sources.industrial_data"},
			NoInvention: true,
			Style:       "sustantivos y verbos simples",
		},
		Instructions: []string{
			"Redacta una sola frase (máximo 18 palabras).",
			"Propón una idea complementaria a las anteriores para reforzar valor.",
			"Menciona procesos, normativas o equipos específicos detectados en Industrial Data.",
			"Alinea la propuesta con las capacidades descritas en el client_summary.",
			"Usa lenguaje claro y directo; evita palabras vacías.",
			"No inventes información.",
		},
		Examples: []string{
			"Sesiones interactivas sobre protocolos de seguridad ATEX para supervisores de planta.",
			"Simulaciones de respuesta a incidentes para técnicos de control de calidad.",
		},
		DependsOn: []string{
			fieldref.Offer,
			fieldref.ClientSummary,
			DepIndustrialData,
		},
	},
	{
		LineID:         "CI_E2_L2_comparacion_sector",
		Name:           "Creative Ideas Email 2 - Comparación sectorial",
		TargetVariable: "HR Industriales | E2",
		Structure:      `Empieza con: "He visto que os comparan con {Y} y me pregunté cómo estáis formando a vuestros equipos para diferenciaros de ellos".`,
		Rules: Rules{
			MaxWords:    28,
			Tone:        "natural",
			NoInvention: true,
			Fallback:    "Si no hay {Y}, usa una comparación genérica del sector (sin inventar marcas).",
		},
		Instructions: []string{
			"Empieza con la frase exacta indicada en la estructura, sustituyendo {Y} por un competidor citado en Industrial Data.",
			`Si no hay competidores citados, usa "otras marcas del sector" como {Y}.`,
			"No inventes nombres propios que no estén en Industrial Data.",
			"Mantén la conexión con la propuesta de valor recogida en el client_summary.",
			"Mantén un tono natural y directo.",
			"Máximo 28 palabras.",
		},
		Examples: []string{
			"He visto que os comparan con Airgas y me pregunté cómo estáis formando a vuestros equipos para diferenciaros de ellos.",
		},
		DependsOn: []string{
			DepIndustrialData,
			fieldref.ClientSummary,
		},
	},
	{
		LineID:         "CI_E3_L2_routing_roles",
		Name:           "Creative Ideas Email 3 - Routing por rol",
		TargetVariable: "HR Industriales | E3",
		Structure:      "Frase que valida si la persona de {Simplified Job Title} es quien lleva los contenidos formativos internos.",
		Rules: Rules{
			MaxWords:    28,
			Tone:        "respetuoso y directo",
			NoInvention: true,
		},
		Instructions: []string{
			"Redacta una sola frase de 24 a 28 palabras.",
			"Opcional: menciona tamaño aproximado de la empresa si aparece en Industrial Data.",
			"Valida con respeto si la persona gestiona los contenidos formativos o si es mejor hablar con RRHH/L&D.",
			"Apóyate en la propuesta y el ICP descritos en el client_summary para justificar el contacto.",
			"No inventes datos.",
		},
		Examples: []string{
			"Sé que en {Simplified Company Name} sois alrededor de {Number of employees}; por tu rol en {Simplified Job Title}, ¿gestionas los contenidos formativos o sería mejor hablar con RRHH o L&D?",
		},
		DependsOn: []string{
			fieldref.ICPBuyerRoles,
			fieldref.ClientSummary,
			DepIndustrialData,
		},
	},
}
