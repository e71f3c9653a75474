package domain

// FallbackSynthesizer builds placeholder questions from the notes alone. It
// is pure: the same notes and count always give the same questions.
type FallbackSynthesizer struct {
	Seeds     SeedOptions
	Templates []string
}

// DefaultFallback is the diversified synthesizer used unless configured otherwise.
var DefaultFallback = FallbackSynthesizer{Seeds: DiversifiedSeedOptions, Templates: DiversifiedTemplates}

// SimpleFallback produces "Explain: ..." questions only.
var SimpleFallback = FallbackSynthesizer{Seeds: SimpleSeedOptions, Templates: SimpleTemplates}

// Synthesize returns up to n questions with distinct normalized forms.
// Fewer than n are returned only when every seed/template pairing has been
// tried.
func (f FallbackSynthesizer) Synthesize(notes string, n int) []string {
	return f.TopUp(nil, notes, n)
}

// TopUp returns existing followed by fallback questions until the result
// holds n questions. Candidates whose normalized form already appears in
// existing are skipped. existing is assumed to be deduplicated already and is
// truncated if it is longer than n.
func (f FallbackSynthesizer) TopUp(existing []string, notes string, n int) []string {
	if n <= 0 {
		return []string{}
	}

	result := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	result = appendUnique(result, seen, existing, n)
	if len(result) >= n {
		return result
	}

	templates := f.Templates
	if len(templates) == 0 {
		templates = DiversifiedTemplates
	}
	seeds := ExtractSeeds(notes, f.Seeds)

	// i mod |S| and i mod |T| cycle with period lcm(|S|,|T|) <= |S|*|T|.
	maxIter := len(seeds) * len(templates)
	candidate := make([]string, 1)
	for i := 0; i < maxIter && len(result) < n; i++ {
		candidate[0] = ApplyTemplate(seeds[i%len(seeds)], i, templates)
		result = appendUnique(result, seen, candidate, n)
	}
	return result
}
