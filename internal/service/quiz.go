package service

import (
	"context"
	"strings"

	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/dto"
	"notes-quizzer/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	// GenerateQuiz always answers: collaborator failures are replaced by
	// fallback questions and never surface as errors.
	GenerateQuiz(ctx context.Context, req *dto.QuizRequest) *dto.QuizResponse
}

// quizService implements QuizService
type quizService struct {
	generator domain.QuestionGenerator
	fallback  domain.FallbackSynthesizer
}

// NewQuizService creates a new instance of quizService
func NewQuizService(generator domain.QuestionGenerator, fallback domain.FallbackSynthesizer) QuizService {
	return &quizService{
		generator: generator,
		fallback:  fallback,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.QuizRequest) *dto.QuizResponse {
	notes := strings.TrimSpace(req.NotesText())
	if notes == "" {
		return dto.NewQuizResponse(nil)
	}

	n := domain.ClampQuestionCount(int(req.N))

	questions, err := s.generator.GenerateQuestions(ctx, domain.GenerationRequest{Notes: notes, Count: n})
	if err != nil {
		logger.Get().Warn("Question generation failed, using fallback questions",
			zap.String("reason", string(domain.ReasonOf(err))),
			zap.Error(err),
			zap.Int("notes_length", len(notes)),
			zap.Int("count", n))
		return dto.NewQuizResponse(s.fallback.Synthesize(notes, n))
	}

	questions = domain.DedupeQuestions(questions)
	if len(questions) < n {
		logger.Get().Info("Topping up generated questions",
			zap.Int("generated", len(questions)),
			zap.Int("count", n))
	}
	// TopUp truncates anything beyond n.
	return dto.NewQuizResponse(s.fallback.TopUp(questions, notes, n))
}
