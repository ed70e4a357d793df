package langpack

import (
	"regexp"
	"unicode"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

// Heuristics returns the built-in language heuristics, evaluated in order
// against the case-folded, script-preserving name. Script heuristics carry
// a dominant weight: a Cyrillic or Hebrew name is never ambiguous here.
func Heuristics() []phonetic.Heuristic {
	return []phonetic.Heuristic{
		script("ru", 10, unicode.Cyrillic),
		script("he", 10, unicode.Hebrew),

		pattern("de", 2, `sch`),
		pattern("de", 2, `sen$`),
		pattern("de", 1.5, `mann$|berg$|burg$|witz$`),
		pattern("en", 2, `son$`),
		pattern("en", 2, `th`),
		pattern("es", 2, `[ií]a$`),
		pattern("es", 2, `ez$`),
		pattern("fr", 2, `eau$|eux$`),
		pattern("ru", 2, `ov$|ev$|off$|sky$|ski$`),
	}
}

// pattern builds a regex-predicate heuristic.
func pattern(lang string, weight float64, expr string) phonetic.Heuristic {
	re := regexp.MustCompile(expr)
	return phonetic.Heuristic{Lang: lang, Weight: weight, Match: re.MatchString}
}

// script builds a heuristic that fires when any rune belongs to the table.
func script(lang string, weight float64, table *unicode.RangeTable) phonetic.Heuristic {
	return phonetic.Heuristic{
		Lang:   lang,
		Weight: weight,
		Match: func(s string) bool {
			for _, r := range s {
				if unicode.Is(table, r) {
					return true
				}
			}
			return false
		},
	}
}
