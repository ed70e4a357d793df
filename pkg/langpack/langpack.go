// Package langpack assembles ready-to-use phonetic configurations: built-in
// rule tables for English, French, German, Spanish, Russian and Hebrew,
// script transliterators, language heuristics, the approximate-mode merger
// table and the per-name-type default candidate pools. It also loads
// additional rule packs from YAML directories.
//
// The engine in pkg/phonetic never touches disk or global state; everything
// it needs is populated here and handed over as one Config value.
package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// Default returns the representative approximate-mode configuration with
// all built-in languages wired in.
func Default() *phonetic.Config {
	return &phonetic.Config{
		NameType:           phonetic.Generic,
		Mode:               phonetic.Approx,
		MaxExpansions:      phonetic.DefaultMaxExpansions,
		MinKeyLength:       2,
		CollapseDuplicates: true,
		TopLanguages:       4,
		Merger:             MergerTable(),
		RuleSets:           RuleSets(),
		Heuristics:         Heuristics(),
		Defaults:           DefaultPools(),
		Transliterators:    Transliterators(),
	}
}

// Exact returns the same configuration in exact mode: no merger folding, no
// duplicate collapsing, strict fallback.
func Exact() *phonetic.Config {
	cfg := Default()
	cfg.Mode = phonetic.Exact
	cfg.CollapseDuplicates = false
	return cfg
}

// RuleSets returns the built-in rule tables keyed by language id.
func RuleSets() map[string]*phonetic.RuleSet {
	return map[string]*phonetic.RuleSet{
		"en": {Lang: "en", Rules: englishRules},
		"fr": {Lang: "fr", Rules: frenchRules},
		"de": {Lang: "de", Rules: germanRules},
		"es": {Lang: "es", Rules: spanishRules},
		"ru": {Lang: "ru", Rules: russianRules},
		"he": {Lang: "he", Rules: hebrewRules},
	}
}

// DefaultPools returns the per-name-type default candidate lists used when
// no heuristic fires.
func DefaultPools() map[phonetic.NameType][]phonetic.Candidate {
	return map[phonetic.NameType][]phonetic.Candidate{
		phonetic.Generic: {
			{Lang: "en", Score: 1}, {Lang: "fr", Score: 1}, {Lang: "de", Score: 1},
			{Lang: "es", Score: 1}, {Lang: "ru", Score: 1},
		},
		phonetic.Ashkenazi: {
			{Lang: "de", Score: 2}, {Lang: "ru", Score: 2}, {Lang: "he", Score: 2},
			{Lang: "en", Score: 1}, {Lang: "fr", Score: 1},
		},
		phonetic.Sephardic: {
			{Lang: "es", Score: 2}, {Lang: "fr", Score: 2}, {Lang: "he", Score: 2},
			{Lang: "en", Score: 1},
		},
	}
}

// concat flattens rule groups into one table.
func concat(groups ...[]phonetic.Rule) []phonetic.Rule {
	var out []phonetic.Rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// vowels maps each single vowel letter to the neutral vowel symbol.
func vowels() []phonetic.Rule {
	out := make([]phonetic.Rule, 0, 5)
	for _, v := range []string{"a", "e", "i", "o", "u"} {
		out = append(out, phonetic.Rule{Pattern: v, Phonemes: []string{"A"}, Priority: 1})
	}
	return out
}

// identity maps each listed consonant to itself.
func identity(letters string) []phonetic.Rule {
	out := make([]phonetic.Rule, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		c := string(letters[i])
		out = append(out, phonetic.Rule{Pattern: c, Phonemes: []string{c}, Priority: 1})
	}
	return out
}
