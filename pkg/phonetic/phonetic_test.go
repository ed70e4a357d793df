package phonetic

import "testing"

// miniConfig wires a single toy language so the public API can be exercised
// without the full built-in tables.
func miniConfig() *Config {
	return &Config{
		NameType:           Generic,
		Mode:               Approx,
		MinKeyLength:       1,
		CollapseDuplicates: true,
		RuleSets: map[string]*RuleSet{
			"t": {Lang: "t", Rules: []Rule{
				{Pattern: "a", Phonemes: []string{"A"}, Priority: 1},
				{Pattern: "n", Phonemes: []string{"n"}, Priority: 1},
			}},
		},
		Defaults: map[NameType][]Candidate{
			Generic: {{Lang: "t", Score: 1}},
		},
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	cfg := miniConfig()
	if res := Encode("", cfg); res != nil {
		t.Errorf("Encode(\"\") = %v, want nil", res)
	}
	if res := Encode("   ", cfg); res != nil {
		t.Errorf("Encode(whitespace) = %v, want nil", res)
	}
}

func TestEncode_SkipsEmptyLanguages(t *testing.T) {
	cfg := miniConfig()
	// No rule or vowel fallback covers these letters, so the key is empty
	// and the language is dropped entirely.
	if res := Encode("bob", cfg); len(res) != 0 {
		t.Errorf("Encode(bob) = %v, want no results", res)
	}
}

func TestEncode_Basic(t *testing.T) {
	res := Encode("Anna", miniConfig())
	if len(res) != 1 {
		t.Fatalf("results = %v, want 1", res)
	}
	if res[0].Lang != "t" {
		t.Errorf("lang = %s, want t", res[0].Lang)
	}
	if len(res[0].Keys) != 1 || res[0].Keys[0] != "AnA" {
		t.Errorf("keys = %v, want [AnA]", res[0].Keys)
	}
}

func TestMatch(t *testing.T) {
	cfg := miniConfig()
	if !Match("Anna", "ana", cfg) {
		t.Error("Anna and ana should match")
	}
	if Match("Anna", "bob", cfg) {
		t.Error("Anna and bob should not match")
	}
	if Match("", "Anna", cfg) {
		t.Error("empty input never matches")
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	cfg := miniConfig()

	if s := Similarity("Anna", "Anna", cfg); s != 1 {
		t.Errorf("self similarity = %f, want 1", s)
	}
	if s := Similarity("Anna", "bob", cfg); s != 0 {
		t.Errorf("disjoint similarity = %f, want 0", s)
	}
	if s := Similarity("", "", cfg); s != 0 {
		t.Errorf("empty similarity = %f, want 0", s)
	}
}

func TestConfigClone_Isolated(t *testing.T) {
	cfg := miniConfig()
	dup := cfg.Clone()
	dup.RuleSets["u"] = &RuleSet{Lang: "u"}
	dup.Mode = Exact

	if _, ok := cfg.RuleSets["u"]; ok {
		t.Error("clone leaked a rule set into the original")
	}
	if cfg.Mode != Approx {
		t.Error("clone leaked mode into the original")
	}
}
