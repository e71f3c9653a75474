package domain

const (
	// MinQuestionCount and MaxQuestionCount bound every quiz request.
	MinQuestionCount = 1
	MaxQuestionCount = 5
	// DefaultQuestionCount is used when the request leaves the count out or sends 0.
	DefaultQuestionCount = 3
)

// ClampQuestionCount maps a raw requested count onto [1, 5]. Zero means the
// caller did not ask for a specific count.
func ClampQuestionCount(requested int) int {
	if requested == 0 {
		return DefaultQuestionCount
	}
	if requested < MinQuestionCount {
		return MinQuestionCount
	}
	if requested > MaxQuestionCount {
		return MaxQuestionCount
	}
	return requested
}
