package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantN     int
		wantNotes *string
		wantErr   bool
	}{
		{"number", `{"notes":"abc","n":4}`, 4, strPtr("abc"), false},
		{"absent n", `{"notes":"abc"}`, 0, strPtr("abc"), false},
		{"null n", `{"notes":"abc","n":null}`, 0, strPtr("abc"), false},
		{"numeric string", `{"notes":"abc","n":" 2 "}`, 2, strPtr("abc"), false},
		{"empty string", `{"notes":"abc","n":""}`, 0, strPtr("abc"), false},
		{"fraction truncates", `{"notes":"abc","n":2.9}`, 2, strPtr("abc"), false},
		{"negative", `{"notes":"abc","n":-1}`, -1, strPtr("abc"), false},
		{"huge", `{"notes":"abc","n":1e300}`, 2147483647, strPtr("abc"), false},
		{"missing notes", `{"n":3}`, 3, nil, false},
		{"word", `{"notes":"abc","n":"three"}`, 0, nil, true},
		{"bool", `{"notes":"abc","n":true}`, 0, nil, true},
		{"array", `{"notes":"abc","n":[1]}`, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req QuizRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantN, int(req.N))
			assert.Equal(t, tt.wantNotes, req.Notes)
		})
	}
}

func TestQuizRequest_NotesText(t *testing.T) {
	assert.Equal(t, "", (&QuizRequest{}).NotesText())
	assert.Equal(t, "x", (&QuizRequest{Notes: strPtr("x")}).NotesText())
}

func TestNewQuizResponse_NeverNull(t *testing.T) {
	body, err := json.Marshal(NewQuizResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[]}`, string(body))
}

func strPtr(s string) *string { return &s }
