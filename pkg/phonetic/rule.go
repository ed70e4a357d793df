package phonetic

import "regexp"

// ContextFunc is a pure predicate over the text surrounding a rule match.
// Left contexts receive the substring before the cursor, right contexts the
// substring after the matched span. A nil context always holds.
type ContextFunc func(s string) bool

// Rule maps a literal pattern to one or more alternative phoneme outputs.
// Among rules matching at the same position the highest Priority wins; ties
// are broken by the longest consumed length. Every surviving alternative
// spawns its own encoding branch.
type Rule struct {
	Pattern  string
	Phonemes []string
	Priority int
	Left     ContextFunc
	Right    ContextFunc
	Consume  int // input characters consumed; 0 means len(Pattern)
}

// consumed returns the effective consumed length of a match.
func (r *Rule) consumed() int {
	if r.Consume > 0 {
		return r.Consume
	}
	return len(r.Pattern)
}

// RuleSet is one language's ordered rule collection. Ordering carries no
// matching significance; disambiguation is by priority and length only.
type RuleSet struct {
	Lang  string
	Rules []Rule
}

// SuffixContext compiles expr into a left-context predicate anchored at the
// end of the preceding text.
func SuffixContext(expr string) ContextFunc {
	re := regexp.MustCompile("(?:" + expr + ")$")
	return re.MatchString
}

// PrefixContext compiles expr into a right-context predicate anchored at the
// start of the following text.
func PrefixContext(expr string) ContextFunc {
	re := regexp.MustCompile("^(?:" + expr + ")")
	return re.MatchString
}

// WordStart holds when the preceding text is empty or ends at a word break.
func WordStart(before string) bool {
	return before == "" || before[len(before)-1] == ' '
}

// WordEnd holds when the following text is empty or starts at a word break.
func WordEnd(after string) bool {
	return after == "" || after[0] == ' '
}
