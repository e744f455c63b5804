package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/linespec"
	"github.com/velora-labs/promptforge/internal/profile"
)

// rendererSystem instructs the model to act as a prompt engineer.
const rendererSystem = "Eres ingeniero de prompts. Devuelves un PROMPT en español listo para pegar en Genesy."

// fallbackDependency is inserted when a resolved spec carries no
// dependencies at all: the prospect data source is always available.
const fallbackDependency = "- Industrial Data (fuente obligatoria en Genesy)"

// GenerateLinePrompt builds the single user message for one resolved
// line spec and returns the model's trimmed text reply as the final
// prompt text. The message embeds the campaign name, the serialized
// profile, the serialized resolved spec, the resolved dependencies and
// the numbered examples. Response content is not validated here; the
// prompt's quality is the model's contract, not this function's.
func GenerateLinePrompt(
	ctx context.Context,
	c completion.Completer,
	p profile.ClientProfile,
	spec linespec.ResolvedLineSpec,
	campaignName string,
) (string, error) {
	profileJSON, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal client profile: %w", err)
	}
	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal line spec: %w", err)
	}

	user := fmt.Sprintf(`Misión
Construir un PROMPT para Genesy que genere una línea dinámica del email de la campaña %q.

Inputs fijos (JSON)
CLIENT_PROFILE:
%s

LINE_SPEC:
%s

Instrucciones
- Usa los datos de CLIENT_PROFILE para tono, pruebas sociales y alineación con la oferta.
- Respeta exactamente la estructura fija, las reglas y los límites de palabras definidos en LINE_SPEC.
- El prompt debe incluir: misión, instrucciones paso a paso, fuentes autorizadas (siempre citar "Industrial Data"), formato de salida y un ejemplo correcto.
- El prompt resultante debe estar en castellano, listo para pegar en Genesy, y debe prohibir inventar información.
- Devuelve SOLO el texto del prompt final, sin comentarios adicionales.

Fuentes que puede usar la persona que ejecuta el prompt
%s

%s`, campaignName, profileJSON, specJSON, dependenciesBlock(spec.DependsOn), examplesBlock(spec.Examples))

	return c.CompleteText(ctx, rendererSystem, user)
}

// dependenciesBlock renders the resolved dependency summaries as dashed
// lines, or the fixed fallback literal when the spec has none.
func dependenciesBlock(deps []string) string {
	if len(deps) == 0 {
		return fallbackDependency
	}
	lines := make([]string, len(deps))
	for i, dep := range deps {
		lines[i] = "- " + dep
	}
	return strings.Join(lines, "\n")
}

// examplesBlock renders a numbered list of sample outputs, or the empty
// string when the spec carries none.
func examplesBlock(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Ejemplos de salidas válidas")
	for i, example := range examples {
		fmt.Fprintf(&b, "\n%d. %s", i+1, example)
	}
	return b.String()
}
