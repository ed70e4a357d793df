package langpack

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
	"gopkg.in/yaml.v3"
)

// PackSpec is the rulepack.yaml schema: one language's rules, optional
// heuristics, merger additions and transliteration table.
type PackSpec struct {
	ID         string            `yaml:"id" json:"id"`
	Lang       string            `yaml:"lang" json:"lang"`
	Version    string            `yaml:"version" json:"version"`
	Source     string            `yaml:"source,omitempty" json:"source,omitempty"`
	License    string            `yaml:"license,omitempty" json:"license,omitempty"`
	Rules      []RuleSpec        `yaml:"rules" json:"-"`
	Heuristics []HeuristicSpec   `yaml:"heuristics,omitempty" json:"-"`
	Merger     map[string]string `yaml:"merger,omitempty" json:"-"`
	Translit   map[string]string `yaml:"translit,omitempty" json:"-"`
}

// RuleSpec is the YAML form of one rule. Left and right contexts are regular
// expressions, anchored at the end of the preceding text and the start of
// the following text respectively.
type RuleSpec struct {
	Pattern  string   `yaml:"pattern"`
	Phonemes []string `yaml:"phonemes"`
	Priority int      `yaml:"priority"`
	Left     string   `yaml:"left,omitempty"`
	Right    string   `yaml:"right,omitempty"`
	Consume  int      `yaml:"consume,omitempty"`
}

// HeuristicSpec is the YAML form of one language heuristic.
type HeuristicSpec struct {
	Regex  string  `yaml:"regex"`
	Weight float64 `yaml:"weight"`
}

// RulePack is a compiled pack ready to merge into a Config.
type RulePack struct {
	Spec       PackSpec
	Rules      []phonetic.Rule
	Heuristics []phonetic.Heuristic
	Merger     map[string]string
	Translit   map[rune]string
}

// LoadRulePack reads and compiles dir/rulepack.yaml.
func LoadRulePack(dir string) (*RulePack, error) {
	path := filepath.Join(dir, "rulepack.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rulepack %s: %w", path, err)
	}

	var spec PackSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse rulepack %s: %w", path, err)
	}
	if spec.ID == "" {
		return nil, fmt.Errorf("rulepack %s: missing id", path)
	}
	if spec.Lang == "" {
		return nil, fmt.Errorf("rulepack %s: missing lang", spec.ID)
	}
	if len(spec.Rules) == 0 {
		return nil, fmt.Errorf("rulepack %s: no rules", spec.ID)
	}

	pack := &RulePack{Spec: spec, Merger: spec.Merger}

	for i, rs := range spec.Rules {
		r, err := compileRule(rs)
		if err != nil {
			return nil, fmt.Errorf("rulepack %s: rule %d: %w", spec.ID, i, err)
		}
		pack.Rules = append(pack.Rules, r)
	}

	for i, hs := range spec.Heuristics {
		re, err := regexp.Compile(hs.Regex)
		if err != nil {
			return nil, fmt.Errorf("rulepack %s: heuristic %d: %w", spec.ID, i, err)
		}
		weight := hs.Weight
		if weight <= 0 {
			weight = 1
		}
		pack.Heuristics = append(pack.Heuristics, phonetic.Heuristic{
			Lang:   spec.Lang,
			Weight: weight,
			Match:  re.MatchString,
		})
	}

	if len(spec.Translit) > 0 {
		pack.Translit = make(map[rune]string, len(spec.Translit))
		for from, to := range spec.Translit {
			r, size := utf8.DecodeRuneInString(from)
			if r == utf8.RuneError || size != len(from) {
				return nil, fmt.Errorf("rulepack %s: translit key %q is not a single rune", spec.ID, from)
			}
			pack.Translit[r] = to
		}
	}

	return pack, nil
}

func compileRule(rs RuleSpec) (phonetic.Rule, error) {
	if rs.Pattern == "" {
		return phonetic.Rule{}, fmt.Errorf("empty pattern")
	}
	if len(rs.Phonemes) == 0 {
		return phonetic.Rule{}, fmt.Errorf("pattern %q: no phonemes", rs.Pattern)
	}

	r := phonetic.Rule{
		Pattern:  rs.Pattern,
		Phonemes: rs.Phonemes,
		Priority: rs.Priority,
		Consume:  rs.Consume,
	}
	if rs.Left != "" {
		re, err := regexp.Compile("(?:" + rs.Left + ")$")
		if err != nil {
			return phonetic.Rule{}, fmt.Errorf("pattern %q: left context: %w", rs.Pattern, err)
		}
		r.Left = re.MatchString
	}
	if rs.Right != "" {
		re, err := regexp.Compile("^(?:" + rs.Right + ")")
		if err != nil {
			return phonetic.Rule{}, fmt.Errorf("pattern %q: right context: %w", rs.Pattern, err)
		}
		r.Right = re.MatchString
	}
	return r, nil
}
