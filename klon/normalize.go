package klon

import (
	"strings"
	"unicode/utf8"

	"sumpus.exe.dev/thai"
)

// leadingClusters rewrite a written leading cluster onto the consonant that is
// actually heard. Order matters: the first matching prefix wins.
var leadingClusters = []struct {
	from, to string
}{
	{"หน", "น"},
	{"หม", "ม"},
	{"หย", "ย"},
	{"หร", "ร"},
	{"หล", "ล"},
	{"หว", "ว"},
	{"หง", "ง"},
	{"หญ", "ย"},
	{"อย", "ย"},
}

// StripLeadingVowel removes one leading vowel or tone mark, if present.
func StripLeadingVowel(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size > 0 && thai.IsVowelMark(r) {
		return s[size:]
	}
	return s
}

// HeadConsonant returns the first consonant letter of s, or "" if s has none.
func HeadConsonant(s string) string {
	for _, r := range s {
		if thai.IsConsonant(r) {
			return string(r)
		}
	}
	return ""
}

// NormalizeLeadingCluster applies at most one leading-cluster substitution.
func NormalizeLeadingCluster(s string) string {
	for _, c := range leadingClusters {
		if strings.HasPrefix(s, c.from) {
			return c.to + s[len(c.from):]
		}
	}
	return s
}

// NormalizeVerse normalizes every whitespace-separated syllable of verse. It returns
// the normalized syllables and their head consonants, both space-joined.
func NormalizeVerse(verse string) (normalized, heads string) {
	fields := strings.Fields(verse)
	norm := make([]string, len(fields))
	hs := make([]string, len(fields))
	for i, f := range fields {
		f = NormalizeLeadingCluster(StripLeadingVowel(f))
		norm[i] = f
		hs[i] = HeadConsonant(f)
	}
	return strings.Join(norm, " "), strings.Join(hs, " ")
}

// Rhymes reports whether two syllables rhyme: their normalized forms share a vowel
// pattern, or their head consonants are equal. Two syllables without any consonant
// have equal (empty) heads and therefore rhyme. The relation is symmetric but not
// transitive.
func (e *Engine) Rhymes(a, b string) bool {
	normA, headA := NormalizeVerse(a)
	normB, headB := NormalizeVerse(b)
	return e.deps.Phonology.VowelPattern(normA) == e.deps.Phonology.VowelPattern(normB) ||
		headA == headB
}
