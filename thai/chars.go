// Package thai implements the Thai orthography services the rhyme engine relies on:
// character classes, cluster and word segmentation, dictionary-backed pronunciation,
// vowel-pattern (sara) and final-sound (marttra) classification, and phonetic distance.
package thai

import "strings"

const (
	// Consonants lists the 44 Thai consonant letters.
	Consonants = "กขฃคฆงจฉชซฌญฎฏฐฑฒณดตถทธนบปผฝพฟภมยรลวศษสหฬอฮ"

	// VowelMarks is the set of marks stripped from the start of a syllable when
	// looking for its head consonant. It includes tone marks and the thanthakhat.
	VowelMarks = "ะาำิีึืุูเแโใไัา็่้๊๋์"

	// Phinthu is the dot below that pronunciation output marks consonant clusters with.
	Phinthu = 'ฺ'

	// Blank is the sentinel pronunciation of a whitespace-only token.
	Blank = " "
)

// leadingVowels are written before the consonant they follow in speech.
const leadingVowels = "เแโใไ"

// toneMarks carry tone only and never change the vowel pattern.
const toneMarks = "่้๊๋"

// followingMarks attach to the preceding consonant inside one character cluster.
const followingMarks = "ัิีึืุู็่้๊๋์ํฺ"

// IsConsonant reports whether r is a Thai consonant letter.
func IsConsonant(r rune) bool {
	return strings.ContainsRune(Consonants, r)
}

// IsVowelMark reports whether r belongs to VowelMarks.
func IsVowelMark(r rune) bool {
	return strings.ContainsRune(VowelMarks, r)
}

// IsLeadingVowel reports whether r is one of เ แ โ ใ ไ.
func IsLeadingVowel(r rune) bool {
	return strings.ContainsRune(leadingVowels, r)
}

// IsToneMark reports whether r is a tone mark.
func IsToneMark(r rune) bool {
	return strings.ContainsRune(toneMarks, r)
}

// IsThai reports whether r is in the Thai Unicode block.
func IsThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

// isFollowingMark reports whether r can never start a character cluster.
func isFollowingMark(r rune) bool {
	return strings.ContainsRune(followingMarks, r)
}

// isTrailingVowel reports whether r is a vowel written after its consonant on the line.
func isTrailingVowel(r rune) bool {
	return r == 'ะ' || r == 'า' || r == 'ำ' || r == 'ๅ'
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ContainsThai reports whether s has at least one Thai letter or mark.
func ContainsThai(s string) bool {
	for _, r := range s {
		if IsThai(r) {
			return true
		}
	}
	return false
}
