package langpack

// MergerTable returns the approximate-mode folding map. Keys fold longest
// first, so "dzh" wins over "zh" at the same position.
func MergerTable() map[string]string {
	return map[string]string{
		"dzh": "z",
		"tsh": "s",
		"sh":  "s",
		"zh":  "z",
		"kh":  "k",
		"ts":  "s",
		"kv":  "k",
	}
}
