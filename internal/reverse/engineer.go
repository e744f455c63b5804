package reverse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/velora-labs/promptforge/internal/completion"
	"github.com/velora-labs/promptforge/internal/profile"
)

// ErrNoPlaceholders indicates the email contains no {placeholder}
// tokens, so there is nothing to reverse engineer.
var ErrNoPlaceholders = errors.New("no placeholders found in email body")

// ErrEmptyEmail indicates a blank email body.
var ErrEmptyEmail = errors.New("email body is required")

// ErrInvalidVariables indicates the model's variable descriptors failed
// schema validation. Fatal for the request; never repaired.
var ErrInvalidVariables = errors.New("variable descriptors failed validation")

// Mode selects the reverse-engineering output.
type Mode string

const (
	// ModeVariables returns the reconciled per-placeholder list.
	ModeVariables Mode = "variables"
	// ModeAnalysis suppresses the variables list and returns a single
	// synthesized analysis prompt instead. The two outputs are mutually
	// exclusive per invocation.
	ModeAnalysis Mode = "analysis"
)

// Options configures one reverse-engineering run.
type Options struct {
	// Language for generated prompt text. Defaults to es-ES.
	Language string
	// Mode defaults to ModeVariables.
	Mode Mode
}

// Result is the outcome of one reverse-engineering run. Variables is
// populated in ModeVariables, AnalysisPrompt in ModeAnalysis; never
// both.
type Result struct {
	Email          string             `json:"email"`
	Language       string             `json:"language"`
	Placeholders   []PlaceholderToken `json:"placeholders"`
	Variables      []ReverseVariable  `json:"variables"`
	AnalysisPrompt string             `json:"analysis_prompt,omitempty"`
}

const engineerSystem = "Eres un especialista en ingeniería de prompts para campañas de email marketing, diseñando prompts de Genesi."

// EngineerVariables reverse-engineers an email template.
//
// Flow: extract placeholders (ErrNoPlaceholders when none), ask the
// model to describe every one, validate and reconcile the answers in
// document order, and in ModeAnalysis issue one further call that
// synthesizes the reconciled variables into a combined analysis prompt.
// At most two sequential model calls per invocation.
func EngineerVariables(ctx context.Context, c completion.Completer, emailBody string, opts Options) (Result, error) {
	email := strings.TrimSpace(emailBody)
	if email == "" {
		return Result{}, ErrEmptyEmail
	}

	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = profile.DefaultLanguage
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeVariables
	}

	placeholders := ExtractPlaceholderSnippets(email)
	if len(placeholders) == 0 {
		return Result{}, ErrNoPlaceholders
	}

	raw, err := c.CompleteJSON(ctx, engineerSystem, variablesPrompt(email, placeholders, language))
	if err != nil {
		return Result{}, fmt.Errorf("variable extraction: %w", err)
	}

	var parsed struct {
		Variables []VariableDescriptor `json:"variables"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, fmt.Errorf("%s: %w", err, ErrInvalidVariables)
	}
	if err := validateDescriptors(parsed.Variables); err != nil {
		return Result{}, err
	}

	variables := Reconcile(placeholders, parsed.Variables)

	result := Result{
		Email:        email,
		Language:     language,
		Placeholders: placeholders,
		Variables:    variables,
	}

	if mode == ModeAnalysis {
		analysis, err := c.CompleteText(ctx, engineerSystem, analysisPrompt(email, variables, language))
		if err != nil {
			return Result{}, fmt.Errorf("analysis synthesis: %w", err)
		}
		result.AnalysisPrompt = analysis
		result.Variables = []ReverseVariable{}
	}

	return result, nil
}

// validateDescriptors enforces the response schema: every text field
// non-blank, at least two conditions and one sample output per
// descriptor.
func validateDescriptors(descriptors []VariableDescriptor) error {
	for i, d := range descriptors {
		required := map[string]string{
			"variable_name":  d.VariableName,
			"placeholder":    d.Placeholder,
			"source_snippet": d.SourceSnippet,
			"goal":           d.Goal,
			"mission":        d.Mission,
			"instructions":   d.Instructions,
			"output":         d.Output,
		}
		for field, value := range required {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("variable %d: missing %s: %w", i, field, ErrInvalidVariables)
			}
		}
		if len(d.Conditions) < 2 {
			return fmt.Errorf("variable %d: needs at least 2 conditions: %w", i, ErrInvalidVariables)
		}
		if len(d.SampleOutputs) < 1 {
			return fmt.Errorf("variable %d: needs at least 1 sample output: %w", i, ErrInvalidVariables)
		}
	}
	return nil
}

// variablesPrompt builds the user message for the per-placeholder
// extraction call.
func variablesPrompt(email string, placeholders []PlaceholderToken, language string) string {
	var list strings.Builder
	for i, p := range placeholders {
		if i > 0 {
			list.WriteString("\n\n")
		}
		fmt.Fprintf(&list, "%d. Placeholder: %s\n   Contexto: %q", i+1, p.Placeholder, p.Snippet)
	}

	return fmt.Sprintf(`Misión
Analizar un email template y generar prompts específicos para cada placeholder dinámico detectado.

Email a analizar
"""
%s
"""

Placeholders detectados
%s

Instrucciones
Para cada placeholder detectado:
1. Crear un prompt específico que genere contenido para ese placeholder
2. El prompt debe incluir: misión, instrucciones paso a paso, condiciones específicas, formato de salida
3. Incluir 1-3 ejemplos realistas de salidas válidas
4. El prompt debe estar en %s y ser ejecutable directamente

Formato de salida requerido
Devuelve un JSON con la siguiente estructura exacta:
{
  "variables": [
    {
      "variable_name": "Nombre descriptivo del placeholder",
      "placeholder": "{Placeholder original}",
      "source_snippet": "Línea completa donde aparece el placeholder",
      "goal": "Qué debe lograr este placeholder en el email",
      "mission": "Descripción concisa de la misión del prompt",
      "instructions": "Instrucciones paso a paso para generar el contenido",
      "conditions": ["Condición 1", "Condición 2", "etc."],
      "output": "Descripción del formato esperado de salida",
      "sample_outputs": ["Ejemplo 1", "Ejemplo 2", "etc."]
    }
  ]
}

Devuelve solo el JSON solicitado.`, email, list.String(), languageName(language))
}

// analysisPrompt builds the user message for the synthesis call: one
// combined analysis prompt covering every reconciled variable.
func analysisPrompt(email string, variables []ReverseVariable, language string) string {
	var blocks strings.Builder
	for i, v := range variables {
		if i > 0 {
			blocks.WriteString("\n\n")
		}
		fmt.Fprintf(&blocks, "Variable %d: %s (%s)\n%s", i+1, v.VariableName, v.Placeholder, v.PromptText)
	}

	return fmt.Sprintf(`Misión
Sintetizar los prompts por variable en un único prompt de análisis que explique cómo reproducir este email template completo.

Email original
"""
%s
"""

Prompts por variable
%s

Instrucciones
- Redacta UN solo prompt de análisis que cubra todas las variables anteriores en orden.
- Explica la estrategia global del email (estructura, tono, fuentes de datos) antes del detalle por variable.
- El prompt debe estar en %s y ser ejecutable directamente.
- Devuelve solo el texto del prompt, sin comentarios adicionales.`, email, blocks.String(), languageName(language))
}

// languageName renders the language tag for prompt text.
func languageName(language string) string {
	if language == profile.DefaultLanguage {
		return "español"
	}
	return "inglés"
}
