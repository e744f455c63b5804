package reverse_test

// Notes:
// - Placeholder extraction is pure string work and fully pinnable, so
//   these tests assert exact tokens and snippets
// - Nested braces are unsupported by contract; the tests document what
//   the pattern actually does with them rather than an aspiration

import (
	"reflect"
	"testing"

	"github.com/velora-labs/promptforge/internal/reverse"
)

// ---------------------------------------------------------------------------
// TestExtractPlaceholderSnippets - Detection, dedup, ordering
// ---------------------------------------------------------------------------

func TestExtractPlaceholderSnippets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []reverse.PlaceholderToken
	}{
		{
			name: "no placeholders",
			text: "Hola, un saludo sin variables.",
			want: []reverse.PlaceholderToken{},
		},
		{
			name: "empty text",
			text: "",
			want: []reverse.PlaceholderToken{},
		},
		{
			name: "single placeholder mid line",
			text: "Vi que {X} recientemente",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{X}", Inner: "X", Snippet: "Vi que {X} recientemente"},
			},
		},
		{
			name: "duplicates deduplicated first wins",
			text: "Hi {a}, {b} and {a} again",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{a}", Inner: "a", Snippet: "Hi {a}, {b} and {a} again"},
				{Placeholder: "{b}", Inner: "b", Snippet: "Hi {a}, {b} and {a} again"},
			},
		},
		{
			name: "order of first appearance",
			text: "{b} primero\n{a} después",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{b}", Inner: "b", Snippet: "{b} primero"},
				{Placeholder: "{a}", Inner: "a", Snippet: "{a} después"},
			},
		},
		{
			name: "placeholder at document start",
			text: "{saludo} y el resto",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{saludo}", Inner: "saludo", Snippet: "{saludo} y el resto"},
			},
		},
		{
			name: "placeholder at document end without newline",
			text: "Atentamente, {firma}",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{firma}", Inner: "firma", Snippet: "Atentamente, {firma}"},
			},
		},
		{
			name: "blank interior skipped",
			text: "antes {} medio {  } después {ok}",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{ok}", Inner: "ok", Snippet: "antes {} medio {  } después {ok}"},
			},
		},
		{
			name: "interior trimmed but literal span kept",
			text: "Hola { nombre }",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{ nombre }", Inner: "nombre", Snippet: "Hola { nombre }"},
			},
		},
		{
			name: "snippet is the containing line only",
			text: "línea uno\nHola {nombre}, encantado\nlínea tres",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{nombre}", Inner: "nombre", Snippet: "Hola {nombre}, encantado"},
			},
		},
		{
			name: "multi word interior",
			text: "Vi que {algo concreto de su web} ayer",
			want: []reverse.PlaceholderToken{
				{
					Placeholder: "{algo concreto de su web}",
					Inner:       "algo concreto de su web",
					Snippet:     "Vi que {algo concreto de su web} ayer",
				},
			},
		},
		{
			name: "same inner different literal spans are distinct",
			text: "{x} y { x }",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{x}", Inner: "x", Snippet: "{x} y { x }"},
				{Placeholder: "{ x }", Inner: "x", Snippet: "{x} y { x }"},
			},
		},
		{
			name: "nested braces match inner span only",
			text: "a {b {c} d",
			want: []reverse.PlaceholderToken{
				{Placeholder: "{c}", Inner: "c", Snippet: "a {b {c} d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reverse.ExtractPlaceholderSnippets(tt.text)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractPlaceholderSnippets(%q):\ngot  %+v\nwant %+v", tt.text, got, tt.want)
			}
		})
	}
}
