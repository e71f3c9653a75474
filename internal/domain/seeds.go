package domain

import (
	"strings"
	"unicode/utf8"
)

// bulletLeaders are stripped from both ends of every notes line.
const bulletLeaders = "-•\t "

// SeedOptions controls how notes lines are turned into seeds.
type SeedOptions struct {
	// MinLength is the minimum number of runes a stripped line needs.
	MinLength int
	// MaxSeeds caps the number of seeds; the first lines win.
	MaxSeeds int
	// Default is the single seed returned when no line qualifies.
	Default string
}

var (
	DiversifiedSeedOptions = SeedOptions{MinLength: 12, MaxSeeds: 20, Default: "the main idea of the notes"}
	SimpleSeedOptions      = SeedOptions{MinLength: 10, MaxSeeds: 10, Default: "Summarize the main idea."}
)

// ExtractSeeds returns the non-trivial lines of notes in their original
// order. It never returns an empty slice.
func ExtractSeeds(notes string, opts SeedOptions) []string {
	var seeds []string
	for _, line := range strings.FieldsFunc(notes, isLineBreak) {
		if opts.MaxSeeds > 0 && len(seeds) >= opts.MaxSeeds {
			break
		}
		line = strings.Trim(strings.TrimSpace(line), bulletLeaders)
		if utf8.RuneCountInString(line) < opts.MinLength {
			continue
		}
		// Rule lines like "............" leave nothing to put in a stem.
		if strings.TrimRight(line, seedTrailingPunct) == "" {
			continue
		}
		seeds = append(seeds, line)
	}
	if len(seeds) == 0 {
		return []string{opts.Default}
	}
	return seeds
}

// isLineBreak reports the runes that end a line, including bare CR, NEL and
// the Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
