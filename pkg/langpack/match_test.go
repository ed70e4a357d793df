package langpack

import (
	"testing"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

func TestMatch_CrossLanguageSpellings(t *testing.T) {
	cfg := Default()

	pairs := []struct{ a, b string }{
		{"Schmidt", "Smith"},
		{"Meyer", "Maier"},
		{"García", "garcia"},
		{"O'Connor", "Oconnor"},
		{"Новак", "Novak"},
	}
	for _, p := range pairs {
		if !phonetic.Match(p.a, p.b, cfg) {
			t.Errorf("Match(%q, %q) = false, want true", p.a, p.b)
		}
	}
}

func TestMatch_DistinctNames(t *testing.T) {
	cfg := Default()

	pairs := []struct{ a, b string }{
		{"Johnson", "Jansen"},
		{"Schmidt", "Garcia"},
	}
	for _, p := range pairs {
		if phonetic.Match(p.a, p.b, cfg) {
			t.Errorf("Match(%q, %q) = true, want false", p.a, p.b)
		}
	}
}

func TestExactModeIsStricter(t *testing.T) {
	// Schmidt/Smith only converge once the merger folds sh into s, so the
	// pair matches approximately but not exactly.
	if !phonetic.Match("Schmidt", "Smith", Default()) {
		t.Error("approximate mode should match Schmidt/Smith")
	}
	if phonetic.Match("Schmidt", "Smith", Exact()) {
		t.Error("exact mode should not match Schmidt/Smith")
	}
}

func TestSimilarity_Ordering(t *testing.T) {
	cfg := Default()

	near := phonetic.Similarity("Schmidt", "Smith", cfg)
	far := phonetic.Similarity("Schmidt", "Garcia", cfg)

	if far != 0 {
		t.Errorf("Similarity(Schmidt, Garcia) = %f, want 0", far)
	}
	if near <= far {
		t.Errorf("similarity ordering violated: near=%f far=%f", near, far)
	}
}

func TestSimilarity_ApproxAtLeastExact(t *testing.T) {
	approx := Default()
	exact := Exact()

	pairs := []struct{ a, b string }{
		{"Schmidt", "Smith"},
		{"Meyer", "Maier"},
		{"Johnson", "Jansen"},
		{"Новак", "Novak"},
		{"García", "garcia"},
	}
	for _, p := range pairs {
		sa := phonetic.Similarity(p.a, p.b, approx)
		se := phonetic.Similarity(p.a, p.b, exact)
		if sa < se {
			t.Errorf("Similarity(%q, %q): approx %f < exact %f", p.a, p.b, sa, se)
		}
	}
}

func TestEncode_LanguageSelection(t *testing.T) {
	cfg := Default()

	res := phonetic.Encode("Schmidt", cfg)
	if len(res) == 0 {
		t.Fatal("expected results for Schmidt")
	}
	if res[0].Lang != "de" {
		t.Errorf("top language = %s, want de", res[0].Lang)
	}

	res = phonetic.Encode("Новак", cfg)
	if len(res) != 1 || res[0].Lang != "ru" {
		t.Fatalf("Cyrillic input results = %v, want ru only", res)
	}
}

func TestEncode_CyrillicTransliteration(t *testing.T) {
	cfg := Default()

	cyr := phonetic.Encode("Новак", cfg)
	lat := phonetic.Encode("Novak", cfg)
	if len(cyr) == 0 || len(lat) == 0 {
		t.Fatal("expected results for both spellings")
	}

	keys := make(map[string]bool)
	for _, k := range cyr[0].Keys {
		keys[k] = true
	}
	found := false
	for _, r := range lat {
		for _, k := range r.Keys {
			if keys[k] {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("no shared key between %v and %v", cyr, lat)
	}
}

func TestEncode_MinKeyLength(t *testing.T) {
	// Single letters produce keys below the default minimum.
	if res := phonetic.Encode("a", Default()); len(res) != 0 {
		t.Errorf("Encode(a) = %v, want no results", res)
	}
}

func TestDefaultPools_Coverage(t *testing.T) {
	pools := DefaultPools()
	rules := RuleSets()

	for nt, pool := range pools {
		if len(pool) == 0 {
			t.Errorf("empty pool for %s", nt)
		}
		for _, c := range pool {
			if _, ok := rules[c.Lang]; !ok {
				t.Errorf("pool %s references unknown language %s", nt, c.Lang)
			}
		}
	}
}

func TestNameTypeChangesPool(t *testing.T) {
	cfg := Default()
	cfg.NameType = phonetic.Sephardic

	// No heuristic fires on this invented name, so the pool decides.
	res := phonetic.Encode("Lumbrozo", cfg)
	if len(res) == 0 {
		t.Fatal("expected results")
	}
	if res[0].Lang != "es" {
		t.Errorf("top language = %s, want es for sephardic pool", res[0].Lang)
	}
}
