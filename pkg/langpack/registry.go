package langpack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

// Registry owns the active configuration: the built-in languages plus every
// rule pack loaded from the packs directory. Reload rebuilds the whole
// configuration from scratch (hot reload on SIGHUP).
type Registry struct {
	mu       sync.RWMutex
	packsDir string
	packs    map[string]*RulePack
	cfg      *phonetic.Config
}

// NewRegistry creates a registry for the given packs directory. An empty
// dir means built-in languages only.
func NewRegistry(packsDir string) *Registry {
	return &Registry{
		packsDir: packsDir,
		packs:    make(map[string]*RulePack),
		cfg:      Default(),
	}
}

// Load scans the packs directory and rebuilds the active configuration.
// A missing directory is not an error: the built-in languages still serve.
func (r *Registry) Load() error {
	cfg := Default()
	newPacks := make(map[string]*RulePack)

	if r.packsDir != "" {
		entries, err := os.ReadDir(r.packsDir)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("read packs dir %s: %w", r.packsDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(r.packsDir, entry.Name())
			if _, err := os.Stat(filepath.Join(dir, "rulepack.yaml")); err != nil {
				continue
			}
			pack, err := LoadRulePack(dir)
			if err != nil {
				return fmt.Errorf("load rulepack %s: %w", entry.Name(), err)
			}
			newPacks[pack.Spec.ID] = pack
		}
	}

	// Sorted application keeps the merged configuration deterministic.
	ids := make([]string, 0, len(newPacks))
	for id := range newPacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		applyPack(cfg, newPacks[id])
	}

	r.mu.Lock()
	r.packs = newPacks
	r.cfg = cfg
	r.mu.Unlock()
	return nil
}

// Reload rebuilds the configuration from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

// Config returns the active configuration. The engine treats it as
// read-only, so handing out the shared pointer is safe.
func (r *Registry) Config() *phonetic.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// PackCount returns the number of loaded rule packs.
func (r *Registry) PackCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packs)
}

// LanguageInfo is the public metadata for one configured language.
type LanguageInfo struct {
	Lang     string `json:"lang"`
	Rules    int    `json:"rules"`
	Translit bool   `json:"translit"`
}

// Languages returns metadata for every configured language, sorted by id.
func (r *Registry) Languages() []LanguageInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]LanguageInfo, 0, len(r.cfg.RuleSets))
	for lang, rs := range r.cfg.RuleSets {
		_, hasTranslit := r.cfg.Transliterators[lang]
		infos = append(infos, LanguageInfo{Lang: lang, Rules: len(rs.Rules), Translit: hasTranslit})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Lang < infos[j].Lang })
	return infos
}

// applyPack merges one compiled pack into a configuration. Pack rules extend
// an existing rule set or create a new language.
func applyPack(cfg *phonetic.Config, pack *RulePack) {
	lang := pack.Spec.Lang

	if existing, ok := cfg.RuleSets[lang]; ok {
		merged := make([]phonetic.Rule, 0, len(existing.Rules)+len(pack.Rules))
		merged = append(merged, existing.Rules...)
		merged = append(merged, pack.Rules...)
		cfg.RuleSets[lang] = &phonetic.RuleSet{Lang: lang, Rules: merged}
	} else {
		cfg.RuleSets[lang] = &phonetic.RuleSet{Lang: lang, Rules: pack.Rules}
	}

	cfg.Heuristics = append(cfg.Heuristics, pack.Heuristics...)

	for k, v := range pack.Merger {
		cfg.Merger[k] = v
	}

	if len(pack.Translit) > 0 {
		table := pack.Translit
		if prev, ok := cfg.Transliterators[lang]; ok {
			inner := prev
			cfg.Transliterators[lang] = func(s string) string {
				return tableTransliterator(table)(inner(s))
			}
		} else {
			cfg.Transliterators[lang] = tableTransliterator(table)
		}
	}
}
