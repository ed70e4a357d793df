// Package phonetic converts personal names into sets of language-specific
// phonetic keys so that names written in different scripts, spellings or
// transliterations can be compared for approximate equality.
//
// The engine is stateless: rule sets, heuristics, transliterators and the
// merger table all arrive through an explicitly passed Config, and every
// function is a pure, deterministic function of (input, config). Independent
// calls may run concurrently with no coordination.
package phonetic

import "strings"

// EncodeResult holds the deduplicated, sorted key set one language produced
// for a name.
type EncodeResult struct {
	Lang string   `json:"lang"`
	Keys []string `json:"keys"`
}

// Encode produces per-language phonetic key sets for a raw name. Empty or
// whitespace-only input yields nil. Candidate languages come from the
// selector (run on a case-folded, script-preserving form so script-sensitive
// heuristics still see the original characters); languages without a
// registered rule set, or whose encoding came up empty, are skipped. Output
// order follows the selector's ranking.
func Encode(name string, cfg *Config) []EncodeResult {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	folded := strings.ToLower(name)

	var results []EncodeResult
	for _, cand := range SelectLanguages(folded, cfg) {
		rs := cfg.RuleSets[cand.Lang]
		if rs == nil {
			continue
		}
		text := folded
		if tr := cfg.Transliterators[cand.Lang]; tr != nil {
			text = tr(text)
		}
		keys := encodeRules(cfg.normalize(text), rs, cfg)
		if len(keys) == 0 {
			continue
		}
		results = append(results, EncodeResult{Lang: cand.Lang, Keys: keys})
	}
	return results
}

// Match reports whether two names share at least one phonetic key across
// all candidate languages.
func Match(a, b string, cfg *Config) bool {
	ka := keyUnion(Encode(a, cfg))
	if len(ka) == 0 {
		return false
	}
	for k := range keyUnion(Encode(b, cfg)) {
		if _, ok := ka[k]; ok {
			return true
		}
	}
	return false
}

// Similarity returns the Jaccard index of the two names' key unions, in
// [0,1]. Two empty key sets score 0 by definition.
func Similarity(a, b string, cfg *Config) float64 {
	ka := keyUnion(Encode(a, cfg))
	kb := keyUnion(Encode(b, cfg))

	inter := 0
	for k := range ka {
		if _, ok := kb[k]; ok {
			inter++
		}
	}
	union := len(ka) + len(kb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// keyUnion flattens per-language results into one key set.
func keyUnion(results []EncodeResult) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, r := range results {
		for _, k := range r.Keys {
			keys[k] = struct{}{}
		}
	}
	return keys
}
