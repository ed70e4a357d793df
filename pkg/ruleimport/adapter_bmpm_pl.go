package ruleimport

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hazyhaar/phonekey/pkg/langpack"
)

func init() {
	Register(&bmpmPolishAdapter{})
}

// bmpmPolishAdapter converts the community-maintained Polish rule CSV into a
// rule pack. CSV columns: pattern,left,right,priority,phonemes where phonemes
// are pipe-separated alternatives ("" marks silent).
type bmpmPolishAdapter struct{}

func (a *bmpmPolishAdapter) ID() string     { return "bmpm-rules-pl" }
func (a *bmpmPolishAdapter) PackID() string { return "polish-v1" }
func (a *bmpmPolishAdapter) Description() string {
	return "Polish phonetic rules (community BMPM-derived CSV)"
}
func (a *bmpmPolishAdapter) DefaultURL() string {
	return "https://github.com/phonekey-data/rulepacks/releases/latest/download/bmpm-pl.zip"
}
func (a *bmpmPolishAdapter) License() string { return "GPL-3.0" }

func (a *bmpmPolishAdapter) Import(ctx context.Context, sourceURL, packsDir string) error {
	dlDir := filepath.Join(packsDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	zipPath := filepath.Join(dlDir, "bmpm-pl.zip")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, zipPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	files, err := unzipFile(zipPath, dlDir)
	if err != nil {
		return fmt.Errorf("unzip: %w", err)
	}

	var rules []langpack.RuleSpec
	for _, f := range files {
		if !strings.HasSuffix(filepath.Base(f), ".csv") {
			continue
		}
		parsed, err := parseRuleCSV(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", filepath.Base(f), err)
		}
		rules = append(rules, parsed...)
	}
	if len(rules) == 0 {
		return fmt.Errorf("no rule CSV found in %s", sourceURL)
	}

	fmt.Printf("  %d rules parsed\n", len(rules))

	packDir := filepath.Join(packsDir, a.PackID())
	if err := ensureDir(packDir); err != nil {
		return err
	}

	return writePackSpec(packDir, &langpack.PackSpec{
		ID:      a.PackID(),
		Lang:    "pl",
		Version: "2026-02",
		Source:  sourceURL,
		License: a.License(),
		Rules:   rules,
		Heuristics: []langpack.HeuristicSpec{
			{Regex: `cz|sz|rz`, Weight: 3},
			{Regex: `ski$|cki$|wicz$`, Weight: 2},
		},
		Merger: map[string]string{"zh": "z", "tsh": "s"},
	})
}

// parseRuleCSV reads pattern,left,right,priority,phonemes lines. Lines
// starting with '#' and the optional header row are skipped.
func parseRuleCSV(path string) ([]langpack.RuleSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rules []langpack.RuleSpec
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "pattern,") {
			continue
		}

		parts := strings.SplitN(line, ",", 5)
		if len(parts) != 5 {
			return nil, fmt.Errorf("line %d: expected 5 columns, got %d", lineNo, len(parts))
		}

		priority, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad priority %q", lineNo, parts[3])
		}

		rules = append(rules, langpack.RuleSpec{
			Pattern:  strings.TrimSpace(parts[0]),
			Left:     strings.TrimSpace(parts[1]),
			Right:    strings.TrimSpace(parts[2]),
			Priority: priority,
			Phonemes: strings.Split(strings.TrimSpace(parts[4]), "|"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
