package phonetic

import (
	"reflect"
	"strings"
	"testing"
)

// testConfig returns a minimal approximate-mode configuration for direct
// encoder tests.
func testConfig() *Config {
	return &Config{
		Mode:               Approx,
		CollapseDuplicates: true,
	}
}

func TestEncodeRules_PriorityWins(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "ch", Phonemes: []string{"x"}, Priority: 2},
		{Pattern: "c", Phonemes: []string{"q"}, Priority: 3},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "h", Phonemes: []string{"h"}, Priority: 1},
	}}

	keys := encodeRules("ch", rs, testConfig())
	if !reflect.DeepEqual(keys, []string{"qh"}) {
		t.Errorf("keys = %v, want [qh]", keys)
	}
}

func TestEncodeRules_LongestBreaksTie(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 2},
		{Pattern: "ch", Phonemes: []string{"x"}, Priority: 2},
	}}

	keys := encodeRules("ch", rs, testConfig())
	if !reflect.DeepEqual(keys, []string{"x"}) {
		t.Errorf("keys = %v, want [x]", keys)
	}
}

func TestEncodeRules_AllSurvivorsBranch(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "c", Phonemes: []string{"s"}, Priority: 1},
	}}

	keys := encodeRules("c", rs, testConfig())
	if !reflect.DeepEqual(keys, []string{"k", "s"}) {
		t.Errorf("keys = %v, want [k s]", keys)
	}
}

func TestEncodeRules_RightContext(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "c", Phonemes: []string{"s"}, Priority: 2, Right: PrefixContext("[ie]")},
		{Pattern: "c", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "i", Phonemes: []string{"i"}, Priority: 1},
		{Pattern: "a", Phonemes: []string{"a"}, Priority: 1},
	}}
	cfg := testConfig()

	if keys := encodeRules("ci", rs, cfg); !reflect.DeepEqual(keys, []string{"si"}) {
		t.Errorf("ci keys = %v, want [si]", keys)
	}
	if keys := encodeRules("ca", rs, cfg); !reflect.DeepEqual(keys, []string{"ka"}) {
		t.Errorf("ca keys = %v, want [ka]", keys)
	}
}

func TestEncodeRules_LeftContextWordStart(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "kn", Phonemes: []string{"n"}, Priority: 2, Left: WordStart},
		{Pattern: "k", Phonemes: []string{"k"}, Priority: 1},
		{Pattern: "n", Phonemes: []string{"n"}, Priority: 1},
		{Pattern: "o", Phonemes: []string{"o"}, Priority: 1},
		{Pattern: "p", Phonemes: []string{"p"}, Priority: 1},
	}}
	cfg := testConfig()

	if keys := encodeRules("knop", rs, cfg); !reflect.DeepEqual(keys, []string{"nop"}) {
		t.Errorf("knop keys = %v, want [nop]", keys)
	}
	// Mid-word kn keeps both letters.
	if keys := encodeRules("okno", rs, cfg); !reflect.DeepEqual(keys, []string{"okno"}) {
		t.Errorf("okno keys = %v, want [okno]", keys)
	}
	// Word boundary restores the start context.
	if keys := encodeRules("o knop", rs, cfg); !reflect.DeepEqual(keys, []string{"onop"}) {
		t.Errorf("o knop keys = %v, want [onop]", keys)
	}
}

func TestEncodeRules_FallbackByMode(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "z", Phonemes: []string{"z"}, Priority: 1},
	}}

	exact := &Config{Mode: Exact}
	if keys := encodeRules("bez", rs, exact); !reflect.DeepEqual(keys, []string{"Az"}) {
		t.Errorf("exact keys = %v, want [Az]", keys)
	}

	approx := testConfig()
	if keys := encodeRules("bez", rs, approx); !reflect.DeepEqual(keys, []string{"z"}) {
		t.Errorf("approx keys = %v, want [z]", keys)
	}
}

func TestEncodeRules_MergerFoldAndCollapse(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "x", Phonemes: []string{"tsh"}, Priority: 1},
	}}
	cfg := testConfig()
	cfg.Merger = map[string]string{"tsh": "s", "sh": "s"}

	if keys := encodeRules("x", rs, cfg); !reflect.DeepEqual(keys, []string{"s"}) {
		t.Errorf("x keys = %v, want [s]", keys)
	}
	// Two folded clusters collapse into one run.
	if keys := encodeRules("xx", rs, cfg); !reflect.DeepEqual(keys, []string{"s"}) {
		t.Errorf("xx keys = %v, want [s]", keys)
	}
}

func TestEncodeRules_CollapseDuplicates(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "n", Phonemes: []string{"n"}, Priority: 1},
	}}

	if keys := encodeRules("nn", rs, testConfig()); !reflect.DeepEqual(keys, []string{"n"}) {
		t.Errorf("collapsed keys = %v, want [n]", keys)
	}

	strict := &Config{Mode: Exact}
	if keys := encodeRules("nn", rs, strict); !reflect.DeepEqual(keys, []string{"nn"}) {
		t.Errorf("strict keys = %v, want [nn]", keys)
	}
}

func TestEncodeRules_ConsumeOverride(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "a", Phonemes: []string{"A"}, Priority: 1, Consume: 2},
		{Pattern: "b", Phonemes: []string{"b"}, Priority: 1},
	}}

	// The rule swallows the following character.
	if keys := encodeRules("ab", rs, testConfig()); !reflect.DeepEqual(keys, []string{"A"}) {
		t.Errorf("keys = %v, want [A]", keys)
	}
}

func TestEncodeRules_SilentPhoneme(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "gh", Phonemes: []string{"", "g"}, Priority: 2},
		{Pattern: "t", Phonemes: []string{"t"}, Priority: 1},
	}}

	keys := encodeRules("ght", rs, testConfig())
	if !reflect.DeepEqual(keys, []string{"gt", "t"}) {
		t.Errorf("keys = %v, want [gt t]", keys)
	}
}

func TestEncodeRules_MinKeyLength(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "a", Phonemes: []string{"x"}, Priority: 1},
		{Pattern: "b", Phonemes: []string{"y"}, Priority: 1},
	}}
	cfg := testConfig()
	cfg.MinKeyLength = 2

	if keys := encodeRules("a", rs, cfg); len(keys) != 0 {
		t.Errorf("keys = %v, want none below min length", keys)
	}
	if keys := encodeRules("ab", rs, cfg); len(keys) != 1 {
		t.Errorf("keys = %v, want one", keys)
	}
}

// An adversarial input with a three-way branch on every character must
// terminate under a tiny expansion budget and stay deterministic.
func TestEncodeRules_PruningTerminatesDeterministically(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "a", Phonemes: []string{"x", "y", "z"}, Priority: 1},
	}}
	cfg := &Config{Mode: Exact, MaxExpansions: 64}

	input := strings.Repeat("a", 16)
	first := encodeRules(input, rs, cfg)
	if len(first) == 0 {
		t.Fatal("expected at least one key")
	}
	for _, k := range first {
		if len(k) != 16 {
			t.Fatalf("key %q has length %d, want 16", k, len(k))
		}
	}

	second := encodeRules(input, rs, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Error("pruned encoding is not deterministic across runs")
	}
}

func TestEncodeRules_WhitespaceTransparent(t *testing.T) {
	rs := &RuleSet{Lang: "t", Rules: []Rule{
		{Pattern: "a", Phonemes: []string{"a"}, Priority: 1},
		{Pattern: "b", Phonemes: []string{"b"}, Priority: 1},
	}}

	joined := encodeRules("ab", rs, testConfig())
	split := encodeRules("a b", rs, testConfig())
	if !reflect.DeepEqual(joined, split) {
		t.Errorf("keys differ across word boundary: %v vs %v", joined, split)
	}
}

func TestMergerFolder_LongestFirst(t *testing.T) {
	f := newMergerFolder(map[string]string{"dzh": "z", "zh": "z", "sh": "s"})

	tests := []struct{ in, want string }{
		{"dzh", "z"},
		{"zh", "z"},
		{"shzh", "sz"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := f.fold(tt.in); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCollapseRuns(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a", "a"},
		{"aab", "ab"},
		{"aabbaa", "aba"},
		{"abab", "abab"},
	}
	for _, tt := range tests {
		if got := collapseRuns(tt.in); got != tt.want {
			t.Errorf("collapseRuns(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
