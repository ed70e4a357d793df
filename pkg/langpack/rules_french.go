package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// French rule table. ç reaches the encoder as c after mark stripping, which
// the front-vowel context usually reads correctly anyway.
var frenchRules = concat(
	[]phonetic.Rule{
		{Pattern: "eau", Phonemes: []string{"A"}, Priority: 3},
		{Pattern: "au", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ou", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "oi", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ai", Phonemes: []string{"A"}, Priority: 2},
		{Pattern: "ei", Phonemes: []string{"A"}, Priority: 2},

		{Pattern: "ch", Phonemes: []string{"sh"}, Priority: 2},
		{Pattern: "ph", Phonemes: []string{"f"}, Priority: 2},
		{Pattern: "gn", Phonemes: []string{"n"}, Priority: 2},
		{Pattern: "qu", Phonemes: []string{"k"}, Priority: 2},

		{Pattern: "c", Phonemes: []string{"s"}, Priority: 2, Right: phonetic.PrefixContext("[iey]")},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "g", Phonemes: []string{"zh"}, Priority: 2, Right: phonetic.PrefixContext("[iey]")},
		{Pattern: "g", Phonemes: []string{"g"}, Priority: 1},
		{Pattern: "j", Phonemes: []string{"zh"}, Priority: 1},
		{Pattern: "w", Phonemes: []string{"v"}, Priority: 1},
		{Pattern: "x", Phonemes: []string{"ks"}, Priority: 1},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},
	},
	vowels(),
	identity("bdfklmnprstvz"),
)
