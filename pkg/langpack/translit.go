package langpack

import (
	"strings"

	"github.com/hazyhaar/phonekey/pkg/phonetic"
)

// Transliterators returns the built-in script transliterators keyed by
// language id. Languages without an entry pass text through unchanged.
func Transliterators() map[string]phonetic.Transliterator {
	return map[string]phonetic.Transliterator{
		"ru": tableTransliterator(cyrillicTable),
		"he": tableTransliterator(hebrewTable),
	}
}

// tableTransliterator substitutes mapped runes and passes everything else
// through, so mixed-script input survives.
func tableTransliterator(table map[rune]string) phonetic.Transliterator {
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if repl, ok := table[r]; ok {
				b.WriteString(repl)
			} else {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
}

var cyrillicTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var hebrewTable = map[rune]string{
	'א': "a", 'ב': "v", 'ג': "g", 'ד': "d", 'ה': "", 'ו': "v", 'ז': "z",
	'ח': "kh", 'ט': "t", 'י': "y", 'כ': "k", 'ך': "k", 'ל': "l",
	'מ': "m", 'ם': "m", 'נ': "n", 'ן': "n", 'ס': "s", 'ע': "a",
	'פ': "f", 'ף': "f", 'צ': "ts", 'ץ': "ts", 'ק': "k", 'ר': "r",
	'ש': "sh", 'ת': "t",
}
