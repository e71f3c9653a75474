package quizgen

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

const systemPrompt = `You are an expert STEM tutor. Generate diverse, high-quality short-answer questions ` +
	`that span the ENTIRE content (beginning, middle, end). Mix difficulty (recall, conceptual, application). ` +
	`Avoid copying the opening lines verbatim. Return ONLY JSON: {"questions": string[]}.`

const userPromptFormat = "Create %d short-answer questions from these notes:\n%s"

// buildMessages returns the system and user turns for one generation call.
func buildMessages(notes string, count int) []llms.MessageContent {
	return []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, fmt.Sprintf(userPromptFormat, count, notes)),
	}
}
