package phonetic

import (
	"sort"
	"strings"
)

// state is one frontier element of the encoding search: a cursor into the
// source string and the key accumulated so far.
type state struct {
	pos int
	key string
}

// encodeRules transduces a normalized string into the set of phonetic keys
// one language's rule set produces. The search is a FIFO breadth-first
// expansion over partial parses: ambiguous rules fork the frontier rather
// than erroring, and a prune policy bounds the frontier when the expansion
// counter overruns MaxExpansions.
func encodeRules(text string, rs *RuleSet, cfg *Config) []string {
	if text == "" {
		return nil
	}

	folder := newMergerFolder(cfg.Merger)
	keys := make(map[string]struct{})
	frontier := []state{{0, ""}}
	expansions := 0
	limit := cfg.maxExpansions()

	for len(frontier) > 0 {
		st := frontier[0]
		frontier = frontier[1:]

		// Word boundaries are transparent to the key.
		for st.pos < len(text) && text[st.pos] == ' ' {
			st.pos++
		}

		if st.pos >= len(text) {
			key := st.key
			if cfg.Mode == Approx {
				key = collapseRuns(folder.fold(key))
			}
			if len(key) >= cfg.MinKeyLength {
				keys[key] = struct{}{}
			}
			continue
		}

		matches := matchAt(text, st.pos, rs)
		if len(matches) == 0 {
			// Single-character fallback: Exact keeps a neutral symbol for
			// vowels, everything else contributes nothing to the key.
			key := st.key
			if cfg.Mode == Exact && isVowel(text[st.pos]) {
				key = appendPhoneme(key, neutralVowel, cfg.CollapseDuplicates)
			}
			frontier = append(frontier, state{st.pos + 1, key})
			continue
		}

		for _, r := range matches {
			next := st.pos + r.consumed()
			for _, ph := range r.Phonemes {
				frontier = append(frontier, state{next, appendPhoneme(st.key, ph, cfg.CollapseDuplicates)})
				expansions++
			}
		}

		if expansions > limit && len(frontier) > pruneKeep {
			frontier = prune(frontier)
		}
	}

	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// matchAt returns the rules applicable at pos after the two-level tie-break:
// only maximum-priority matches survive, and among those only the ones with
// the maximum consumed length. All survivors are applied.
func matchAt(text string, pos int, rs *RuleSet) []*Rule {
	var out []*Rule
	bestPrio, bestLen := 0, 0

	for i := range rs.Rules {
		r := &rs.Rules[i]
		if !strings.HasPrefix(text[pos:], r.Pattern) {
			continue
		}
		if r.Left != nil && !r.Left(text[:pos]) {
			continue
		}
		if r.Right != nil && !r.Right(text[pos+len(r.Pattern):]) {
			continue
		}

		cl := r.consumed()
		switch {
		case len(out) == 0 || r.Priority > bestPrio || (r.Priority == bestPrio && cl > bestLen):
			out = append(out[:0], r)
			bestPrio, bestLen = r.Priority, cl
		case r.Priority == bestPrio && cl == bestLen:
			out = append(out, r)
		}
	}
	return out
}

// prune bounds the frontier: states closest to finalizing (largest cursor)
// are kept first, shorter keys preferred among equally advanced states.
func prune(frontier []state) []state {
	sort.SliceStable(frontier, func(i, j int) bool {
		if frontier[i].pos != frontier[j].pos {
			return frontier[i].pos > frontier[j].pos
		}
		return len(frontier[i].key) < len(frontier[j].key)
	})
	return frontier[:pruneKeep]
}

// appendPhoneme extends a key, optionally collapsing characters that would
// duplicate the last character of the key so far.
func appendPhoneme(key, ph string, collapse bool) string {
	if !collapse {
		return key + ph
	}
	b := make([]byte, len(key), len(key)+len(ph))
	copy(b, key)
	for i := 0; i < len(ph); i++ {
		if n := len(b); n > 0 && b[n-1] == ph[i] {
			continue
		}
		b = append(b, ph[i])
	}
	return string(b)
}

// collapseRuns removes immediately-adjacent repeated characters, keeping the
// first of each run.
func collapseRuns(s string) string {
	if len(s) < 2 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	var last byte
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == last {
			continue
		}
		last = s[i]
		b.WriteByte(last)
	}
	return b.String()
}

// mergerFolder performs longest-match-first substring replacement with the
// merger table, scanning left to right. Unmatched characters pass through.
type mergerFolder struct {
	keys  []string
	table map[string]string
}

func newMergerFolder(table map[string]string) *mergerFolder {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &mergerFolder{keys: keys, table: table}
}

func (m *mergerFolder) fold(s string) string {
	if len(m.keys) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
scan:
	for i < len(s) {
		for _, k := range m.keys {
			if strings.HasPrefix(s[i:], k) {
				b.WriteString(m.table[k])
				i += len(k)
				continue scan
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
