package middleware

import (
	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/dto"
	"notes-quizzer/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedQuizRequestKey is the fiber.Ctx local holding the parsed request.
const ValidatedQuizRequestKey = "validated_quiz_request"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validator,
	}
}

// ValidateQuizRequest parses and validates the POST /api/quiz body
func (vm *ValidationMiddleware) ValidateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, errs := vm.ParseQuizRequest(c)
		if len(errs) > 0 {
			return errs // handled by ErrorHandler
		}

		c.Locals(ValidatedQuizRequestKey, req)
		return c.Next()
	}
}

// ParseQuizRequest decodes the body and runs the quiz request checks.
func (vm *ValidationMiddleware) ParseQuizRequest(c *fiber.Ctx) (*dto.QuizRequest, domain.ValidationErrors) {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, domain.ValidationErrors{
			domain.NewInvalidFormatError("body", err.Error()),
		}
	}
	if errs := vm.validator.ValidateQuizRequest(&req); len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}
