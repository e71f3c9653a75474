package quizgen

import (
	"context"
	"fmt"
	"strconv"

	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/util"

	"golang.org/x/sync/singleflight"
)

// SingleflightGenerator collapses concurrent identical requests (same notes
// and count) into one call of the inner generator. Nothing is kept once the
// call returns.
type SingleflightGenerator struct {
	inner   domain.QuestionGenerator
	sfGroup singleflight.Group
}

func NewSingleflightGenerator(inner domain.QuestionGenerator) *SingleflightGenerator {
	return &SingleflightGenerator{inner: inner}
}

func (g *SingleflightGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	key := util.HashString(req.Notes) + ":" + strconv.Itoa(req.Count)

	res, err, _ := g.sfGroup.Do(key, func() (interface{}, error) {
		return g.inner.GenerateQuestions(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	questions, ok := res.([]string)
	if !ok {
		return nil, domain.NewGenerationError(domain.ReasonMalformedOutput,
			fmt.Errorf("unexpected type from singleflight.Do: %T", res))
	}
	// Callers own their slice.
	return append([]string(nil), questions...), nil
}

var _ domain.QuestionGenerator = (*SingleflightGenerator)(nil)
