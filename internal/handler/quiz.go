package handler

import (
	"notes-quizzer/internal/dto"
	"notes-quizzer/internal/middleware"
	"notes-quizzer/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service    service.QuizService
	validation *middleware.ValidationMiddleware
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validation *middleware.ValidationMiddleware) *QuizHandler {
	return &QuizHandler{
		service:    service,
		validation: validation,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from notes
// @Description Returns up to n short-answer questions built from the notes. n defaults to 3 and is clamped to [1, 5]. When the language model is unavailable the questions are synthesized from the notes.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Notes and question count"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedQuizRequestKey).(*dto.QuizRequest)
	if !ok {
		var err error
		if req, err = h.parseRequest(c); err != nil {
			return err
		}
	}

	return c.JSON(h.service.GenerateQuiz(c.UserContext(), req))
}

func (h *QuizHandler) parseRequest(c *fiber.Ctx) (*dto.QuizRequest, error) {
	req, errs := h.validation.ParseQuizRequest(c)
	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true})
}
