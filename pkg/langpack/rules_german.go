package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// German rule table. Umlauts reach the encoder mark-stripped (ä -> a), so
// only base letters appear in patterns.
var germanRules = concat(
	[]phonetic.Rule{
		{Pattern: "tsch", Phonemes: []string{"tsh"}, Priority: 3},
		{Pattern: "sch", Phonemes: []string{"sh"}, Priority: 3},
		{Pattern: "ch", Phonemes: []string{"kh"}, Priority: 2},
		{Pattern: "ck", Phonemes: []string{"k"}, Priority: 2},
		{Pattern: "dt", Phonemes: []string{"t"}, Priority: 2},
		{Pattern: "th", Phonemes: []string{"t"}, Priority: 2},
		{Pattern: "ph", Phonemes: []string{"f"}, Priority: 2},
		{Pattern: "qu", Phonemes: []string{"kv"}, Priority: 2},
		{Pattern: "sp", Phonemes: []string{"shp"}, Priority: 2, Left: phonetic.WordStart},
		{Pattern: "st", Phonemes: []string{"sht"}, Priority: 2, Left: phonetic.WordStart},

		// s is voiced before a vowel; both readings branch.
		{Pattern: "s", Phonemes: []string{"z", "s"}, Priority: 2, Right: phonetic.PrefixContext("[aeiouy]")},
		{Pattern: "s", Phonemes: []string{"s"}, Priority: 1},

		{Pattern: "w", Phonemes: []string{"v"}, Priority: 1},
		{Pattern: "v", Phonemes: []string{"f"}, Priority: 1},
		{Pattern: "z", Phonemes: []string{"ts"}, Priority: 1},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "j", Phonemes: []string{"j"}, Priority: 1},
		{Pattern: "x", Phonemes: []string{"ks"}, Priority: 1},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},

		{Pattern: "ei", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ie", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "eu", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "au", Phonemes: []string{"A"}, Priority: 2},
	},
	vowels(),
	identity("bdfgklmnprt"),
)
