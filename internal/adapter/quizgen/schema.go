package quizgen

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionsSchemaURL = "schema://quiz-questions.json"

// questionsSchema accepts any element type in the array; elements are
// coerced to strings after validation.
var questionsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
		},
	},
	"required": []any{"questions"},
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getQuestionsSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionsSchemaURL, questionsSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(questionsSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateQuestionsPayload checks a decoded JSON value against the schema.
func validateQuestionsPayload(parsed any) error {
	schema, err := getQuestionsSchema()
	if err != nil {
		return fmt.Errorf("compile questions schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
