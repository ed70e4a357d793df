package phonetic

// NameType selects the default candidate language pool used when no
// heuristic fires on a name.
type NameType string

const (
	Generic   NameType = "generic"
	Ashkenazi NameType = "ashkenazi"
	Sephardic NameType = "sephardic"
)

// RuleMode selects the rule-application strictness.
type RuleMode string

const (
	// Exact keeps keys as the rules produce them; unmatched vowels map to
	// the neutral symbol and unmatched consonants are dropped.
	Exact RuleMode = "exact"
	// Approx additionally applies merger folding and duplicate collapsing
	// at finalization, and drops every unmatched character.
	Approx RuleMode = "approx"
)

const (
	// DefaultMaxExpansions bounds total branch expansions per encoding call
	// before frontier pruning kicks in.
	DefaultMaxExpansions = 4096
	// pruneKeep is the frontier size retained after a prune.
	pruneKeep = 1024
	// neutralVowel is the fallback symbol for unmatched vowels in Exact mode.
	neutralVowel = "A"
)

// Transliterator converts a script-specific string into a Latin form
// consumable by rule tables.
type Transliterator func(string) string

// Normalizer reduces raw text to the lowercase, mark-stripped, filtered
// form the encoder operates on.
type Normalizer func(string) string

// Candidate is a language with its selection score.
type Candidate struct {
	Lang  string  `json:"lang"`
	Score float64 `json:"score"`
}

// Heuristic votes a weight for a language when its predicate holds on the
// case-folded, script-preserving input.
type Heuristic struct {
	Lang   string
	Weight float64
	Match  func(string) bool
}

// Config carries everything an encoding call needs. It is read-only to the
// engine: every function here is pure given (input, config), so one Config
// may serve any number of concurrent calls.
type Config struct {
	NameType           NameType
	Mode               RuleMode
	MaxExpansions      int
	MinKeyLength       int
	CollapseDuplicates bool
	TopLanguages       int

	// Merger folds multi-character phoneme clusters to a single symbol
	// during Approx finalization, longest key first.
	Merger map[string]string

	RuleSets        map[string]*RuleSet
	Heuristics      []Heuristic
	Defaults        map[NameType][]Candidate
	Transliterators map[string]Transliterator

	// Normalize overrides the built-in normalizer when non-nil.
	Normalize Normalizer
}

// Clone returns a copy safe to modify without affecting the original.
// Rule sets and tables are shared; the maps holding them are copied.
func (c *Config) Clone() *Config {
	dup := *c
	dup.RuleSets = make(map[string]*RuleSet, len(c.RuleSets))
	for k, v := range c.RuleSets {
		dup.RuleSets[k] = v
	}
	dup.Merger = make(map[string]string, len(c.Merger))
	for k, v := range c.Merger {
		dup.Merger[k] = v
	}
	dup.Transliterators = make(map[string]Transliterator, len(c.Transliterators))
	for k, v := range c.Transliterators {
		dup.Transliterators[k] = v
	}
	dup.Heuristics = append([]Heuristic(nil), c.Heuristics...)
	dup.Defaults = make(map[NameType][]Candidate, len(c.Defaults))
	for k, v := range c.Defaults {
		dup.Defaults[k] = append([]Candidate(nil), v...)
	}
	return &dup
}

func (c *Config) maxExpansions() int {
	if c.MaxExpansions > 0 {
		return c.MaxExpansions
	}
	return DefaultMaxExpansions
}

func (c *Config) normalize(s string) string {
	if c.Normalize != nil {
		return c.Normalize(s)
	}
	return NormalizeName(s)
}
