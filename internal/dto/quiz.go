package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuizRequest is the body of POST /api/quiz
// @Description Notes to build a quiz from and the desired number of questions
type QuizRequest struct {
	Notes *string       `json:"notes" example:"Photosynthesis converts light energy into chemical energy."`
	N     QuestionCount `json:"n" swaggertype:"integer" example:"3"`
}

// NotesText returns the notes or "" when the field was absent.
func (r *QuizRequest) NotesText() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

// QuizResponse is the body returned by POST /api/quiz
// @Description Generated short-answer questions, at most the requested count
type QuizResponse struct {
	Questions []string `json:"questions"`
}

// NewQuizResponse never renders questions as null.
func NewQuizResponse(questions []string) *QuizResponse {
	if questions == nil {
		questions = []string{}
	}
	return &QuizResponse{Questions: questions}
}

// HealthResponse is the body returned by GET /api/health
type HealthResponse struct {
	OK bool `json:"ok"`
}

// QuestionCount is a loosely typed integer: it accepts a JSON number, a
// numeric string or null. Fractions truncate toward zero. Zero means "not set".
type QuestionCount int

func (c *QuestionCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*c = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("n must be an integer, got %s", string(data))
	}

	// Anything outside int32 is clamped later anyway.
	f = math.Max(math.Min(math.Trunc(f), math.MaxInt32), math.MinInt32)
	*c = QuestionCount(int(f))
	return nil
}
