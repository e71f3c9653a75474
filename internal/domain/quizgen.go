package domain

import (
	"context"
	"errors"
	"fmt"
)

// GenerationRequest is one call to an external question source.
type GenerationRequest struct {
	Notes string
	Count int
}

// QuestionGenerator is the port to the external question source. On success
// it returns the raw question strings as produced (possibly blank or
// duplicated); the caller is responsible for cleaning them. Every failure is
// reported as a *GenerationError.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req GenerationRequest) ([]string, error)
}

// FailureReason classifies why a generation call produced no usable payload.
type FailureReason string

const (
	ReasonTransport       FailureReason = "transport"
	ReasonTimeout         FailureReason = "timeout"
	ReasonAuth            FailureReason = "auth"
	ReasonRateLimited     FailureReason = "rate_limited"
	ReasonMalformedOutput FailureReason = "malformed_output"
	ReasonEmptyOutput     FailureReason = "empty_output"
)

// GenerationError is the failure half of a generation result.
type GenerationError struct {
	Reason FailureReason
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("question generation failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("question generation failed (%s)", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func NewGenerationError(reason FailureReason, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

// ReasonOf extracts the failure reason from err. Errors that are not
// GenerationErrors are reported as transport failures.
func ReasonOf(err error) FailureReason {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	return ReasonTransport
}
