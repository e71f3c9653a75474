package validation

import (
	"unicode/utf8"

	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/dto"
)

// Validator provides request validation functionality
type Validator struct {
	maxNotesLength int
}

// NewValidator creates a new validator instance. maxNotesLength <= 0
// disables the length check.
func NewValidator(maxNotesLength int) *Validator {
	return &Validator{maxNotesLength: maxNotesLength}
}

// ValidateQuizRequest validates the quiz generation request. Blank notes are
// accepted; only an absent field is rejected.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Notes == nil {
		errors = append(errors, domain.NewMissingFieldError("notes"))
		return errors
	}

	if v.maxNotesLength > 0 {
		if length := utf8.RuneCountInString(*req.Notes); length > v.maxNotesLength {
			errors = append(errors, domain.NewOutOfRangeError("notes", length, 0, v.maxNotesLength))
		}
	}

	return errors
}
