package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const trailingSentencePunct = ".?!"

// NormalizeQuestion returns the form two questions are compared by when
// deduplicating: NFC, trimmed, whitespace runs collapsed to one space,
// lowercased, trailing '.', '?' and '!' removed.
func NormalizeQuestion(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	// Spaces are trimmed along with the punctuation so "what is x ?" agrees
	// with "what is x" and the result stays a fixed point.
	return strings.TrimRight(s, trailingSentencePunct+" ")
}

// DedupeQuestions trims every question, drops blank ones and keeps only the
// first occurrence of each normalized form. Order is preserved.
func DedupeQuestions(questions []string) []string {
	return appendUnique(make([]string, 0, len(questions)), make(map[string]struct{}, len(questions)), questions, -1)
}

// appendUnique appends questions to dst until dst holds limit entries
// (limit < 0 means no limit). seen is updated in place.
func appendUnique(dst []string, seen map[string]struct{}, questions []string, limit int) []string {
	for _, q := range questions {
		if limit >= 0 && len(dst) >= limit {
			break
		}
		q = strings.TrimSpace(q)
		key := NormalizeQuestion(q)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		dst = append(dst, q)
	}
	return dst
}
