package domain

import "strings"

// SeedPlaceholder is replaced by the seed in every question stem template.
const SeedPlaceholder = "{seed}"

// seedTrailingPunct is removed from a seed before it is placed in a stem.
const seedTrailingPunct = ":.?;"

// DiversifiedTemplates rotate through definition, rationale, mechanism,
// comparison, example, problem/solution, assumptions, computation, pitfalls
// and cross-topic framings, in that order.
var DiversifiedTemplates = []string{
	"What is meant by: {seed}?",
	"Why does this matter: {seed}?",
	"How does this work: {seed}?",
	"Compare and contrast this with a related idea: {seed}.",
	"Give a concrete example that illustrates: {seed}.",
	"What problem does this address, and how is it solved: {seed}?",
	"What assumptions underlie this statement: {seed}?",
	"How would you calculate, measure or quantify this: {seed}?",
	"What are common mistakes or pitfalls related to: {seed}?",
	"How does this connect to another topic in the notes: {seed}?",
}

// SimpleTemplates is the single-stem set.
var SimpleTemplates = []string{"Explain: {seed}"}

// ApplyTemplate builds one question from seed using the template at
// index modulo len(templates). templates must not be empty.
func ApplyTemplate(seed string, index int, templates []string) string {
	tmpl := templates[index%len(templates)]
	cleaned := strings.TrimRight(strings.TrimSpace(seed), seedTrailingPunct)
	return strings.Replace(tmpl, SeedPlaceholder, cleaned, 1)
}
