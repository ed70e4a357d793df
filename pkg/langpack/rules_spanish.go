package langpack

import "github.com/hazyhaar/phonekey/pkg/phonetic"

// Spanish rule table. ñ reaches the encoder as n after mark stripping.
var spanishRules = concat(
	[]phonetic.Rule{
		{Pattern: "ch", Phonemes: []string{"tsh"}, Priority: 2},
		{Pattern: "ll", Phonemes: []string{"j"}, Priority: 2},
		{Pattern: "rr", Phonemes: []string{"r"}, Priority: 2},
		{Pattern: "qu", Phonemes: []string{"k"}, Priority: 2},
		{Pattern: "gu", Phonemes: []string{"g"}, Priority: 2, Right: phonetic.PrefixContext("[ie]")},

		{Pattern: "c", Phonemes: []string{"s"}, Priority: 2, Right: phonetic.PrefixContext("[ie]")},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "g", Phonemes: []string{"kh"}, Priority: 2, Right: phonetic.PrefixContext("[ie]")},
		{Pattern: "g", Phonemes: []string{"g"}, Priority: 1},
		{Pattern: "j", Phonemes: []string{"kh"}, Priority: 1},
		{Pattern: "z", Phonemes: []string{"s"}, Priority: 1},
		{Pattern: "v", Phonemes: []string{"b"}, Priority: 1},
		{Pattern: "x", Phonemes: []string{"ks"}, Priority: 1},
		{Pattern: "y", Phonemes: []string{"A"}, Priority: 1},
	},
	vowels(),
	identity("bdfklmnprst"),
)
