package quizgen

import (
	"context"

	"notes-quizzer/internal/domain"
)

// UnavailableGenerator stands in when no model client could be built, so
// every request is answered from the fallback synthesizer.
type UnavailableGenerator struct {
	reason domain.FailureReason
	cause  error
}

func NewUnavailableGenerator(reason domain.FailureReason, cause error) *UnavailableGenerator {
	return &UnavailableGenerator{reason: reason, cause: cause}
}

func (g *UnavailableGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	return nil, domain.NewGenerationError(g.reason, g.cause)
}

var _ domain.QuestionGenerator = (*UnavailableGenerator)(nil)
