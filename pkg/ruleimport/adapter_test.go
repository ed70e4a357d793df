package ruleimport

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hazyhaar/phonekey/pkg/langpack"
)

func TestParseRuleCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.csv")
	csv := `pattern,left,right,priority,phonemes
# digraphs
cz,,,2,tsh
sz,,,2,sh
c,,[ie],2,s

w,,,1,v
gh,,,1,|g
`
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := parseRuleCSV(path)
	if err != nil {
		t.Fatalf("parseRuleCSV: %v", err)
	}
	if len(rules) != 5 {
		t.Fatalf("rules = %d, want 5", len(rules))
	}

	if rules[0].Pattern != "cz" || rules[0].Priority != 2 || rules[0].Phonemes[0] != "tsh" {
		t.Errorf("rule 0 = %+v", rules[0])
	}
	if rules[2].Right != "[ie]" {
		t.Errorf("rule 2 right = %q, want [ie]", rules[2].Right)
	}
	// Empty alternative marks a silent reading.
	if len(rules[4].Phonemes) != 2 || rules[4].Phonemes[0] != "" || rules[4].Phonemes[1] != "g" {
		t.Errorf("rule 4 phonemes = %v", rules[4].Phonemes)
	}
}

func TestParseRuleCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.csv")
	os.WriteFile(bad, []byte("cz,,2,tsh\n"), 0o644)
	if _, err := parseRuleCSV(bad); err == nil {
		t.Error("expected error for missing column")
	}

	badPrio := filepath.Join(dir, "prio.csv")
	os.WriteFile(badPrio, []byte("cz,,,x,tsh\n"), 0o644)
	if _, err := parseRuleCSV(badPrio); err == nil {
		t.Error("expected error for non-numeric priority")
	}
}

// zipWithCSV builds an in-memory ZIP holding one rules CSV.
func zipWithCSV(t *testing.T, csv string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("rules-pl.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(csv)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestBmpmPolishAdapter_Import(t *testing.T) {
	payload := zipWithCSV(t, `pattern,left,right,priority,phonemes
cz,,,2,tsh
sz,,,2,sh
w,,,1,v
a,,,1,A
k,,,1,k
`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	packsDir := t.TempDir()
	a := &bmpmPolishAdapter{}
	if err := a.Import(context.Background(), srv.URL, packsDir); err != nil {
		t.Fatalf("Import: %v", err)
	}

	// The written pack must load and compile.
	pack, err := langpack.LoadRulePack(filepath.Join(packsDir, a.PackID()))
	if err != nil {
		t.Fatalf("LoadRulePack: %v", err)
	}
	if pack.Spec.Lang != "pl" {
		t.Errorf("lang = %s, want pl", pack.Spec.Lang)
	}
	if len(pack.Rules) != 5 {
		t.Errorf("rules = %d, want 5", len(pack.Rules))
	}
	if len(pack.Heuristics) == 0 {
		t.Error("expected heuristics in the pack")
	}

	// The download scratch directory is cleaned up.
	if _, err := os.Stat(filepath.Join(packsDir, "_download")); !os.IsNotExist(err) {
		t.Error("_download directory left behind")
	}
}

func TestBmpmPolishAdapter_Registered(t *testing.T) {
	a, err := Get("bmpm-rules-pl")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.PackID() != "polish-v1" {
		t.Errorf("pack id = %s", a.PackID())
	}

	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown adapter")
	}

	all := All()
	if len(all) == 0 {
		t.Fatal("expected registered adapters")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID() > all[i].ID() {
			t.Error("All() not sorted by ID")
		}
	}
}
