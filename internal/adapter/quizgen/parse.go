package quizgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in LLM response")

// extractJSONObject drops <think>...</think> blocks and anything outside the
// outermost braces, which covers code fences and chatty preambles.
func extractJSONObject(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	for {
		thinkStart := strings.Index(cleaned, "<think>")
		if thinkStart == -1 {
			break
		}
		thinkEnd := strings.Index(cleaned[thinkStart:], "</think>")
		if thinkEnd == -1 {
			break
		}
		thinkEnd += thinkStart
		cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return "", errNoJSONObject
	}
	return cleaned[jsonStart : jsonEnd+1], nil
}

// parseQuestions decodes and validates a {"questions": [...]} payload and
// coerces every element to a trimmed string. Null elements are skipped.
func parseQuestions(raw string) ([]string, error) {
	extracted, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(extracted))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateQuestionsPayload(parsed); err != nil {
		return nil, err
	}

	items := parsed.(map[string]any)["questions"].([]any)
	questions := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		questions = append(questions, strings.TrimSpace(coerceString(item)))
	}
	return questions, nil
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return buf.String()
	}
}
