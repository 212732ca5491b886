package klon

import "strings"

// Syllabify expands per-word pronunciations into one syllable stream. Hyphenated
// pronunciations contribute one element per syllable; a Blank pronunciation stays a
// single Blank element. A trailing Blank closes the final verse.
func Syllabify(pronunciations []string) []string {
	out := make([]string, 0, len(pronunciations)*2+1)
	for _, p := range pronunciations {
		if p == Blank {
			out = append(out, Blank)
			continue
		}
		out = append(out, strings.Split(p, "-")...)
	}
	return append(out, Blank)
}

// SplitVerses splits a syllable stream at every Blank. Adjacent Blanks produce empty
// verses, which are kept so that verse numbering follows the input; the checks skip
// them.
func SplitVerses(syllables []string) [][]string {
	var verses [][]string
	start := 0
	for i, s := range syllables {
		if s == Blank {
			verses = append(verses, syllables[start:i:i])
			start = i + 1
		}
	}
	if start < len(syllables) {
		verses = append(verses, syllables[start:])
	}
	return verses
}

// Stanzas groups verses into consecutive runs of StanzaSize. The last stanza may be
// shorter.
func Stanzas(verses [][]string) [][][]string {
	var out [][][]string
	for start := 0; start < len(verses); start += StanzaSize {
		end := min(start+StanzaSize, len(verses))
		out = append(out, verses[start:end])
	}
	return out
}

// CountSyllables counts the non-blank syllables of a stream.
func CountSyllables(syllables []string) int {
	n := 0
	for _, s := range syllables {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
