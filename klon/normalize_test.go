package klon

import "testing"

func TestStripLeadingVowel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"เขา", "ขา"},
		{"ไป", "ป"},
		{"มา", "มา"},
		{"่ก", "ก"},
		{"", ""},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := StripLeadingVowel(tt.input); got != tt.want {
			t.Errorf("StripLeadingVowel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHeadConsonant(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"มา", "ม"},
		{"เขา", "ข"},
		{"ไป", "ป"},
		{"!?", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := HeadConsonant(tt.input); got != tt.want {
			t.Errorf("HeadConsonant(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeLeadingCluster(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"หนาว", "นาว"},
		{"หมา", "มา"},
		{"หญิง", "ยิง"},
		{"อยู่", "ยู่"},
		{"หวาน", "วาน"},
		{"ห่าง", "ห่าง"},
		{"มา", "มา"},
		// one substitution only
		{"หนหน", "นหน"},
	}
	for _, tt := range tests {
		if got := NormalizeLeadingCluster(tt.input); got != tt.want {
			t.Errorf("NormalizeLeadingCluster(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeVerse(t *testing.T) {
	norm, heads := NormalizeVerse("เหมือน หนาว ! มา")
	if norm != "มือน นาว ! มา" {
		t.Errorf("normalized = %q", norm)
	}
	if heads != "ม น  ม" {
		t.Errorf("heads = %q", heads)
	}
}

func TestRhymes(t *testing.T) {
	e := newTestEngine(t, testDeps())
	tests := []struct {
		a, b string
		want bool
	}{
		{"มา", "ตา", true},   // same vowel pattern
		{"มา", "ดี", false},  // different vowel and head
		{"มา", "มือ", true},  // same head consonant
		{"เขา", "ตา", true},  // leading vowel stripped before classifying
		{"หนาว", "นี", true}, // หน reads as น
		{"ดี", "ดู", true},
		{"ดี", "ตู", false},
		// Syllables without consonants have equal empty heads and rhyme.
		{"!", "?", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := e.Rhymes(tt.a, tt.b); got != tt.want {
				t.Errorf("Rhymes(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if e.Rhymes(tt.a, tt.b) != e.Rhymes(tt.b, tt.a) {
				t.Errorf("Rhymes(%q, %q) is not symmetric", tt.a, tt.b)
			}
		})
	}
}

func TestRhymes_HeadConsonantAlone(t *testing.T) {
	// Every distinct input gets its own vowel pattern, so only the head
	// comparison can make two syllables rhyme.
	deps := testDeps()
	deps.Phonology = VowelPatternFunc(func(s string) string { return "x" + s })
	e := newTestEngine(t, deps)
	tests := []struct {
		a, b string
		want bool
	}{
		{"!", "?", true},
		{"", "!", true},
		{"มา", "มือ", true},
		{"มา", "ดี", false},
		{"มา", "!", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := e.Rhymes(tt.a, tt.b); got != tt.want {
				t.Errorf("Rhymes(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRhymes_Symmetric(t *testing.T) {
	e := newTestEngine(t, testDeps())
	words := []string{"มา", "ตา", "ดี", "เขา", "หนาว", "ใจ", "ไป", "รัก", "ร้อน", "!", "", "เรียน", "อยู่"}
	for _, a := range words {
		for _, b := range words {
			if e.Rhymes(a, b) != e.Rhymes(b, a) {
				t.Errorf("Rhymes(%q, %q) != Rhymes(%q, %q)", a, b, b, a)
			}
		}
	}
}
