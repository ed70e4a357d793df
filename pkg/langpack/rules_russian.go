package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// Russian rule table, applied to the Latin output of the Cyrillic
// transliterator (or directly to Latin spellings of Russian names).
var russianRules = concat(
	[]phonetic.Rule{
		{Pattern: "shch", Phonemes: []string{"sh"}, Priority: 3},
		{Pattern: "zh", Phonemes: []string{"zh"}, Priority: 2},
		{Pattern: "kh", Phonemes: []string{"kh"}, Priority: 2},
		{Pattern: "ts", Phonemes: []string{"ts"}, Priority: 2},
		{Pattern: "ch", Phonemes: []string{"tsh"}, Priority: 2},
		{Pattern: "sh", Phonemes: []string{"sh"}, Priority: 2},

		{Pattern: "yu", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ya", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "yo", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},
	},
	vowels(),
	identity("bvgdzklmnprstf"),
)
