package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// Hebrew rule table, applied to the Latin output of the Hebrew
// transliterator (or to romanized spellings directly).
var hebrewRules = concat(
	[]phonetic.Rule{
		{Pattern: "kh", Phonemes: []string{"kh"}, Priority: 2},
		{Pattern: "ts", Phonemes: []string{"ts"}, Priority: 2},
		{Pattern: "sh", Phonemes: []string{"sh"}, Priority: 2},
		{Pattern: "ch", Phonemes: []string{"kh"}, Priority: 2},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},
		{Pattern: "w", Phonemes: []string{"v"}, Priority: 1},
	},
	vowels(),
	identity("bvgdzklmnprstf"),
)
