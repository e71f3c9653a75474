package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMQuestionGenerator implements domain.QuestionGenerator over any
// LangchainGo model.
type LLMQuestionGenerator struct {
	llm         llms.Model
	modelName   string
	temperature float64
	timeout     time.Duration
}

// NewLLMQuestionGenerator wraps llm. A zero timeout leaves the deadline to
// the caller's context.
func NewLLMQuestionGenerator(llm llms.Model, modelName string, temperature float64, timeout time.Duration) (*LLMQuestionGenerator, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm client cannot be nil")
	}
	return &LLMQuestionGenerator{
		llm:         llm,
		modelName:   modelName,
		temperature: temperature,
		timeout:     timeout,
	}, nil
}

// GenerateQuestions asks the model for req.Count questions in JSON mode and
// returns the coerced question strings.
func (g *LLMQuestionGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	l := logger.Get()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.llm.GenerateContent(ctx, buildMessages(req.Notes, req.Count),
		llms.WithJSONMode(),
		llms.WithTemperature(g.temperature),
	)
	if err != nil {
		reason := classifyCallError(ctx, err)
		l.Error("LLM question generation call failed",
			zap.String("model", g.modelName),
			zap.String("reason", string(reason)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, domain.NewGenerationError(reason, fmt.Errorf("llm call failed: %w", err))
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, domain.NewGenerationError(domain.ReasonMalformedOutput, errors.New("no choices in LLM response"))
	}

	raw := resp.Choices[0].Content
	l.Debug("Raw LLM response received", zap.String("model", g.modelName), zap.Int("length", len(raw)))

	questions, err := parseQuestions(raw)
	if err != nil {
		l.Warn("Failed to parse LLM question payload",
			zap.String("model", g.modelName),
			zap.Error(err),
			zap.Int("response_length", len(raw)))
		return nil, domain.NewGenerationError(domain.ReasonMalformedOutput, err)
	}
	if len(questions) == 0 {
		return nil, domain.NewGenerationError(domain.ReasonEmptyOutput, errors.New("LLM returned an empty questions array"))
	}

	l.Info("LLM questions generated",
		zap.String("model", g.modelName),
		zap.Int("requested", req.Count),
		zap.Int("received", len(questions)),
		zap.Duration("duration", time.Since(start)))
	return questions, nil
}

// classifyCallError maps a client error onto a failure reason. The
// LangchainGo backends do not share a typed error, so status hints in the
// message are used.
func classifyCallError(ctx context.Context, err error) domain.FailureReason {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ReasonTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return domain.ReasonRateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized"):
		return domain.ReasonAuth
	default:
		return domain.ReasonTransport
	}
}

var _ domain.QuestionGenerator = (*LLMQuestionGenerator)(nil)
