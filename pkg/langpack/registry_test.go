package langpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

func writePackDir(t *testing.T, root, name, yaml string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rulepack.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write rulepack: %v", err)
	}
}

const polishPack = `id: polish-test
lang: pl
version: "1.0"
rules:
  - pattern: cz
    phonemes: ["tsh"]
    priority: 2
  - pattern: sz
    phonemes: ["sh"]
    priority: 2
  - pattern: w
    phonemes: ["v"]
    priority: 1
  - pattern: a
    phonemes: ["A"]
    priority: 1
  - pattern: e
    phonemes: ["A"]
    priority: 1
  - pattern: i
    phonemes: ["A"]
    priority: 1
  - pattern: y
    phonemes: ["A"]
    priority: 1
  - pattern: k
    phonemes: ["k"]
    priority: 1
  - pattern: l
    phonemes: ["l"]
    priority: 1
  - pattern: m
    phonemes: ["m"]
    priority: 1
  - pattern: n
    phonemes: ["n"]
    priority: 1
  - pattern: r
    phonemes: ["r"]
    priority: 1
  - pattern: s
    phonemes: ["s"]
    priority: 1
heuristics:
  - regex: cz|sz
    weight: 3
  - regex: ski$|wicz$
    weight: 2
`

func TestRegistry_BuiltinsOnly(t *testing.T) {
	reg := NewRegistry("")
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reg.PackCount() != 0 {
		t.Errorf("packs = %d, want 0", reg.PackCount())
	}
	langs := reg.Languages()
	if len(langs) != 6 {
		t.Fatalf("languages = %v, want 6 builtins", langs)
	}
	for _, info := range langs {
		if info.Rules == 0 {
			t.Errorf("language %s has no rules", info.Lang)
		}
	}
}

func TestRegistry_MissingDirIsNotAnError(t *testing.T) {
	reg := NewRegistry(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Languages()) != 6 {
		t.Error("builtins should still serve")
	}
}

func TestRegistry_LoadsPackAndRoutesNames(t *testing.T) {
	root := t.TempDir()
	writePackDir(t, root, "polish", polishPack)

	reg := NewRegistry(root)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reg.PackCount() != 1 {
		t.Fatalf("packs = %d, want 1", reg.PackCount())
	}

	var found bool
	for _, info := range reg.Languages() {
		if info.Lang == "pl" {
			found = true
			if info.Rules != 13 {
				t.Errorf("pl rules = %d, want 13", info.Rules)
			}
		}
	}
	if !found {
		t.Fatal("pl language not registered")
	}

	// Pack heuristics route Polish-looking names to the new table, where
	// cz and sz converge to the same folded sounds.
	cfg := reg.Config()
	res := phonetic.Encode("Szymanski", cfg)
	if len(res) == 0 || res[0].Lang != "pl" {
		t.Fatalf("Encode(Szymanski) = %v, want pl first", res)
	}
	if !phonetic.Match("Szymanski", "Simanski", cfg) {
		t.Error("sz/s spellings should match under the pack")
	}
}

func TestRegistry_PackExtendsBuiltinLanguage(t *testing.T) {
	root := t.TempDir()
	writePackDir(t, root, "extras", `id: english-extras
lang: en
version: "1.0"
rules:
  - pattern: zh
    phonemes: ["zh"]
    priority: 2
`)

	reg := NewRegistry(root)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	base := len(RuleSets()["en"].Rules)
	for _, info := range reg.Languages() {
		if info.Lang == "en" && info.Rules != base+1 {
			t.Errorf("en rules = %d, want %d", info.Rules, base+1)
		}
	}
}

func TestRegistry_Reload(t *testing.T) {
	root := t.TempDir()
	reg := NewRegistry(root)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.PackCount() != 0 {
		t.Fatalf("packs = %d, want 0", reg.PackCount())
	}

	writePackDir(t, root, "polish", polishPack)
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.PackCount() != 1 {
		t.Errorf("packs after reload = %d, want 1", reg.PackCount())
	}

	// Removing the pack and reloading drops the language again.
	if err := os.RemoveAll(filepath.Join(root, "polish")); err != nil {
		t.Fatal(err)
	}
	if err := reg.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if reg.PackCount() != 0 {
		t.Errorf("packs after removal = %d, want 0", reg.PackCount())
	}
}

func TestRegistry_BadPackFailsLoad(t *testing.T) {
	root := t.TempDir()
	writePackDir(t, root, "broken", "id: broken\nlang: xx\n")

	reg := NewRegistry(root)
	if err := reg.Load(); err == nil {
		t.Fatal("expected error for pack without rules")
	}
}
