package reverse

import (
	"fmt"
	"strings"
)

// VariableDescriptor is one variable block as returned by the model.
type VariableDescriptor struct {
	VariableName  string   `json:"variable_name"`
	Placeholder   string   `json:"placeholder"`
	SourceSnippet string   `json:"source_snippet"`
	Goal          string   `json:"goal"`
	Mission       string   `json:"mission"`
	Instructions  string   `json:"instructions"`
	Conditions    []string `json:"conditions"`
	Output        string   `json:"output"`
	SampleOutputs []string `json:"sample_outputs"`
}

// ReverseVariable is a reconciled descriptor: matched to a detected
// placeholder and carrying the composed prompt text.
type ReverseVariable struct {
	VariableName  string   `json:"variable_name"`
	Placeholder   string   `json:"placeholder"`
	SourceSnippet string   `json:"source_snippet"`
	Goal          string   `json:"goal"`
	Mission       string   `json:"mission"`
	Instructions  string   `json:"instructions"`
	Conditions    []string `json:"conditions"`
	Output        string   `json:"output"`
	SampleOutputs []string `json:"sample_outputs"`
	PromptText    string   `json:"prompt_text"`
}

// Reconcile matches model descriptors back to the detected placeholder
// tokens by exact literal match.
//
// The token list is ground truth: output order always follows the
// tokens' document order, never the order the model answered in. Tokens
// without a matching descriptor are silently dropped, as are descriptors
// naming no detected placeholder; both are a deliberate lossy-degrade
// policy, not errors. Duplicate descriptors for one placeholder resolve
// to the last one.
func Reconcile(tokens []PlaceholderToken, descriptors []VariableDescriptor) []ReverseVariable {
	byPlaceholder := make(map[string]VariableDescriptor, len(descriptors))
	for _, d := range descriptors {
		byPlaceholder[d.Placeholder] = d
	}

	variables := make([]ReverseVariable, 0, len(tokens))
	for _, token := range tokens {
		d, ok := byPlaceholder[token.Placeholder]
		if !ok {
			continue
		}

		v := ReverseVariable{
			VariableName:  strings.TrimSpace(d.VariableName),
			Placeholder:   strings.TrimSpace(d.Placeholder),
			SourceSnippet: strings.TrimSpace(d.SourceSnippet),
			Goal:          strings.TrimSpace(d.Goal),
			Mission:       strings.TrimSpace(d.Mission),
			Instructions:  strings.TrimSpace(d.Instructions),
			Conditions:    trimAll(d.Conditions),
			Output:        strings.TrimSpace(d.Output),
			SampleOutputs: trimAll(d.SampleOutputs),
		}
		v.PromptText = composePromptText(v)
		variables = append(variables, v)
	}

	return variables
}

// composePromptText concatenates the labeled sections in fixed order:
// Mission, Instructions, Conditions (bulleted), Output, Examples
// (numbered).
func composePromptText(v ReverseVariable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Misión: %s\n\n", v.Mission)
	fmt.Fprintf(&b, "Instrucciones:\n%s\n\n", v.Instructions)

	b.WriteString("Condiciones:\n")
	for _, c := range v.Conditions {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	fmt.Fprintf(&b, "\nFormato de salida:\n%s\n\n", v.Output)

	b.WriteString("Ejemplos:")
	for i, s := range v.SampleOutputs {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s)
	}

	return b.String()
}

func trimAll(items []string) []string {
	trimmed := make([]string, len(items))
	for i, item := range items {
		trimmed[i] = strings.TrimSpace(item)
	}
	return trimmed
}
