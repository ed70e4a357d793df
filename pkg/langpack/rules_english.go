package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// English rule table. Phoneme symbols follow the shared convention: "A" for
// any vowel sound, lowercase clusters ("sh", "tsh", "dzh", "kh", "ts") for
// the sounds the merger table folds in approximate mode.
var englishRules = concat(
	[]phonetic.Rule{
		{Pattern: "sch", Phonemes: []string{"sk"}, Priority: 3},
		{Pattern: "sh", Phonemes: []string{"sh"}, Priority: 2},
		{Pattern: "ch", Phonemes: []string{"tsh", "k"}, Priority: 2},
		{Pattern: "th", Phonemes: []string{"t"}, Priority: 2},
		{Pattern: "ph", Phonemes: []string{"f"}, Priority: 2},
		{Pattern: "gh", Phonemes: []string{"", "g"}, Priority: 2},
		{Pattern: "ck", Phonemes: []string{"k"}, Priority: 2},
		{Pattern: "qu", Phonemes: []string{"kv"}, Priority: 2},
		{Pattern: "wh", Phonemes: []string{"v"}, Priority: 2},
		{Pattern: "kn", Phonemes: []string{"n"}, Priority: 2, Left: phonetic.WordStart},
		{Pattern: "wr", Phonemes: []string{"r"}, Priority: 2, Left: phonetic.WordStart},

		{Pattern: "c", Phonemes: []string{"s"}, Priority: 2, Right: phonetic.PrefixContext("[iey]")},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "g", Phonemes: []string{"dzh"}, Priority: 2, Right: phonetic.PrefixContext("[iey]")},
		{Pattern: "g", Phonemes: []string{"g"}, Priority: 1},
		{Pattern: "j", Phonemes: []string{"dzh"}, Priority: 1},
		{Pattern: "x", Phonemes: []string{"ks"}, Priority: 1},
		{Pattern: "w", Phonemes: []string{"v"}, Priority: 1},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},

		{Pattern: "ee", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ea", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ai", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ay", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ey", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "oo", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ou", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "oa", Phonemes: []string{"A"}, Priority: 2},
	},
	vowels(),
	identity("bdfklmnprstvz"),
)
