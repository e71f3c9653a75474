package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", `{"questions":[]}`, `{"questions":[]}`, false},
		{"fenced", "```json\n{\"questions\":[\"a\"]}\n```", `{"questions":["a"]}`, false},
		{"preamble", "Here you go: {\"questions\":[\"a\"]} Enjoy!", `{"questions":["a"]}`, false},
		{"think block", "<think>maybe {not this}</think>\n{\"questions\":[\"a\"]}", `{"questions":["a"]}`, false},
		{"two think blocks", "<think>a</think><think>{b}</think>{\"questions\":[]}", `{"questions":[]}`, false},
		{"no braces", "no json here", "", true},
		{"reversed braces", "} {", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, errNoJSONObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestions_Coercion(t *testing.T) {
	raw := `{"questions": ["  What is X?  ", 42, 3.5, true, null, {"q": "nested <b>"}, ["a", 1], ""]}`
	got, err := parseQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"What is X?",
		"42",
		"3.5",
		"true",
		`{"q":"nested <b>"}`,
		`["a",1]`,
		"",
	}, got)
}

func TestParseQuestions_Invalid(t *testing.T) {
	tests := map[string]string{
		"truncated json":   `{"questions": ["a", "b"`,
		"missing field":    `{"question": ["a"]}`,
		"questions object": `{"questions": {"0": "a"}}`,
		"questions null":   `{"questions": null}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseQuestions(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseQuestions_ExtraFieldsAllowed(t *testing.T) {
	got, err := parseQuestions(`{"questions": ["a"], "notes": "ignored"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}
