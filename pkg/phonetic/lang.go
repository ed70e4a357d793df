package phonetic

import "sort"

// SelectLanguages ranks candidate languages for a case-folded, script-
// preserving name. Every heuristic whose predicate holds contributes its
// weight to its language; when none fires the configured name-type default
// pool is used instead. Scores are normalized by their sum (skipped when the
// sum is zero), sorted descending with stable ties, and truncated to
// TopLanguages when set. The result is empty only when the configuration
// supplies neither heuristics nor defaults.
func SelectLanguages(text string, cfg *Config) []Candidate {
	scores := make(map[string]float64)
	var order []string

	for _, h := range cfg.Heuristics {
		if h.Match == nil || !h.Match(text) {
			continue
		}
		if _, seen := scores[h.Lang]; !seen {
			order = append(order, h.Lang)
		}
		scores[h.Lang] += h.Weight
	}

	var candidates []Candidate
	if len(order) > 0 {
		candidates = make([]Candidate, 0, len(order))
		for _, lang := range order {
			candidates = append(candidates, Candidate{Lang: lang, Score: scores[lang]})
		}
	} else {
		candidates = append(candidates, cfg.Defaults[cfg.NameType]...)
	}
	if len(candidates) == 0 {
		return nil
	}

	var sum float64
	for _, c := range candidates {
		sum += c.Score
	}
	if sum > 0 {
		for i := range candidates {
			candidates[i].Score /= sum
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if cfg.TopLanguages > 0 && len(candidates) > cfg.TopLanguages {
		candidates = candidates[:cfg.TopLanguages]
	}
	return candidates
}
