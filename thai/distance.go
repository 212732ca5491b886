package thai

import (
	"context"
	"strings"

	"github.com/antzucaro/matchr"
)

var initialSound = map[rune]string{
	'ก': "k", 'ข': "kh", 'ฃ': "kh", 'ค': "kh", 'ฅ': "kh", 'ฆ': "kh", 'ง': "ng",
	'จ': "ch", 'ฉ': "ch", 'ช': "ch", 'ซ': "s", 'ฌ': "ch", 'ญ': "y",
	'ฎ': "d", 'ฏ': "t", 'ฐ': "th", 'ฑ': "th", 'ฒ': "th", 'ณ': "n",
	'ด': "d", 'ต': "t", 'ถ': "th", 'ท': "th", 'ธ': "th", 'น': "n",
	'บ': "b", 'ป': "p", 'ผ': "ph", 'ฝ': "f", 'พ': "ph", 'ฟ': "f", 'ภ': "ph", 'ม': "m",
	'ย': "y", 'ร': "r", 'ล': "l", 'ว': "w", 'ศ': "s", 'ษ': "s", 'ส': "s",
	'ห': "h", 'ฬ': "l", 'อ': "", 'ฮ': "h",
}

var vowelSound = map[string]string{
	"อะ": "a", "อา": "aa", "อิ": "i", "อี": "ii", "อึ": "ue", "อือ": "uue",
	"อุ": "u", "อู": "uu", "เอะ": "e", "เอ": "ee", "แอะ": "ae", "แอ": "aae",
	"โอะ": "o", "โอ": "oo", "เอาะ": "aw", "ออ": "aaw", "เออะ": "oe", "เออ": "ooe",
	"เอียะ": "ia", "เอีย": "iia", "เอือะ": "uea", "เอือ": "uuea", "อัวะ": "ua", "อัว": "uua",
	"ไอ": "ai", "เอา": "ao", "อำ": "am",
}

var finalSound = map[string]string{
	MaeKaa: "", MaeKok: "k", MaeKot: "t", MaeKop: "p", MaeKong: "ng",
	MaeKon: "n", MaeKom: "m", MaeKoey: "y", MaeKoew: "w",
}

// RomanizeSyllable renders one spelled syllable as initial+vowel+final sounds.
func RomanizeSyllable(s string) string {
	if !ContainsThai(s) {
		return strings.ToLower(strings.TrimSpace(s))
	}
	syl := parseSyllable(s)
	var b strings.Builder
	switch len(syl.initial) {
	case 1:
		b.WriteString(initialSound[syl.initial[0]])
	case 2:
		// ห and อ only lend their tone class to the second letter.
		if syl.initial[0] != 'ห' && syl.initial[0] != 'อ' {
			b.WriteString(initialSound[syl.initial[0]])
		}
		b.WriteString(initialSound[syl.initial[1]])
	}
	vowel := VowelPattern(s)
	b.WriteString(vowelSound[vowel])
	switch vowel {
	case "ไอ", "เอา", "อำ":
	default:
		b.WriteString(finalSound[Marttra(s)])
	}
	return b.String()
}

// Romanize renders a hyphen-delimited pronunciation, joining syllables with "-".
func Romanize(pronunciation string) string {
	sylls := strings.Split(pronunciation, "-")
	for i, s := range sylls {
		sylls[i] = RomanizeSyllable(s)
	}
	return strings.Join(sylls, "-")
}

// Scorer measures phonetic distance between a reference syllable and candidate words.
type Scorer struct {
	pron *Pronouncer
}

// NewScorer creates a scorer that pronounces candidates with pron.
func NewScorer(pron *Pronouncer) *Scorer {
	return &Scorer{pron: pron}
}

// Distances returns one score per candidate: the Levenshtein distance between the
// romanized pronunciations. Zero means identical sound; larger is farther.
func (s *Scorer) Distances(ctx context.Context, reference string, candidates []string) ([]float64, error) {
	out := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return out, nil
	}
	ref, err := s.romanized(ctx, reference)
	if err != nil {
		return nil, err
	}
	for i, c := range candidates {
		rc, err := s.romanized(ctx, c)
		if err != nil {
			return nil, err
		}
		out[i] = float64(matchr.Levenshtein(ref, rc))
	}
	return out, nil
}

func (s *Scorer) romanized(ctx context.Context, word string) (string, error) {
	pron, err := s.pron.Pronounce(ctx, word)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(Romanize(pron), "-", ""), nil
}
