package phonetic

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"García", "garcia"},
		{"MÜLLER", "muller"},
		{"O'Connor", "oconnor"},
		{"Jean-Claude", "jeanclaude"},
		{"  Anna   Maria  ", "anna maria"},
		{"Élodie", "elodie"},
		{"x2y", "xy"},
		{"", ""},
		{"'-,.", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsVowel(t *testing.T) {
	for _, v := range []byte("aeiouy") {
		if !isVowel(v) {
			t.Errorf("isVowel(%c) = false", v)
		}
	}
	for _, c := range []byte("bcdz") {
		if isVowel(c) {
			t.Errorf("isVowel(%c) = true", c)
		}
	}
}
