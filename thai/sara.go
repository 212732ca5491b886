package thai

import "strings"

// Final-sound classes (marttra) of a Thai syllable.
const (
	MaeKaa  = "กา"  // open syllable
	MaeKok  = "กก"  // -k
	MaeKot  = "กด"  // -t
	MaeKop  = "กบ"  // -p
	MaeKong = "กง"  // -ng
	MaeKon  = "กน"  // -n
	MaeKom  = "กม"  // -m
	MaeKoey = "เกย" // -y
	MaeKoew = "เกอว" // -w
)

var finalClass = map[rune]string{
	'ก': MaeKok, 'ข': MaeKok, 'ค': MaeKok, 'ฆ': MaeKok,
	'จ': MaeKot, 'ช': MaeKot, 'ซ': MaeKot, 'ฌ': MaeKot, 'ฎ': MaeKot, 'ฏ': MaeKot,
	'ฐ': MaeKot, 'ฑ': MaeKot, 'ฒ': MaeKot, 'ด': MaeKot, 'ต': MaeKot, 'ถ': MaeKot,
	'ท': MaeKot, 'ธ': MaeKot, 'ศ': MaeKot, 'ษ': MaeKot, 'ส': MaeKot,
	'บ': MaeKop, 'ป': MaeKop, 'พ': MaeKop, 'ฟ': MaeKop, 'ภ': MaeKop,
	'ง': MaeKong,
	'น': MaeKon, 'ญ': MaeKon, 'ณ': MaeKon, 'ร': MaeKon, 'ล': MaeKon, 'ฬ': MaeKon,
	'ม': MaeKom,
	'ย': MaeKoey,
	'ว': MaeKoew,
}

// syllable is the orthographic breakdown of one spelled syllable.
type syllable struct {
	lead    rune   // เ แ โ ใ ไ or 0
	initial []rune // initial consonant or two-letter cluster
	rest    []rune // vowel marks, vowel carriers and final consonant
}

// syllableBody drops tone marks, the phinthu, and letters silenced by the thanthakhat.
func syllableBody(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case IsToneMark(r) || r == Phinthu:
		case r == '์':
			if n := len(out); n > 0 {
				silenced := out[n-1]
				out = out[:n-1]
				if (silenced == 'ิ' || silenced == 'ุ') && len(out) > 0 {
					out = out[:len(out)-1]
				}
			}
		default:
			out = append(out, r)
		}
	}
	return out
}

// isClusterPair reports whether c1 c2 form a two-letter initial. next is the rune
// after c2, or 0 at the end of the syllable.
func isClusterPair(c1, c2, next rune, hasLead bool) bool {
	if next == 0 {
		return false
	}
	switch {
	case c1 == 'ห' && strings.ContainsRune("งญนมยรลว", c2):
		return true
	case c1 == 'อ' && c2 == 'ย':
		return true
	case strings.ContainsRune("กขคตปผพ", c1) && (c2 == 'ร' || c2 == 'ล'):
		// รร is the vowel "an", not a cluster.
		return !(c2 == 'ร' && next == 'ร')
	case strings.ContainsRune("กขค", c1) && c2 == 'ว':
		// ว after a consonant is a vowel (อัว) unless a vowel sign follows it.
		return hasLead || !IsConsonant(next)
	}
	return false
}

func parseSyllable(s string) syllable {
	body := syllableBody(s)
	var syl syllable
	i := 0
	if len(body) > 0 && IsLeadingVowel(body[0]) {
		syl.lead = body[0]
		i = 1
	}
	if i >= len(body) || !IsConsonant(body[i]) {
		syl.rest = body[i:]
		return syl
	}
	end := i + 1
	if end < len(body) && IsConsonant(body[end]) {
		var next rune
		if end+1 < len(body) {
			next = body[end+1]
		}
		if isClusterPair(body[i], body[end], next, syl.lead != 0) {
			end++
		}
	}
	syl.initial = body[i:end]
	syl.rest = body[end:]
	return syl
}

// VowelPattern classifies the vowel (sara) of a single spelled syllable and returns
// its conventional name, e.g. "อา", "เอีย", "โอะ". Syllables with no Thai letters
// return "".
func VowelPattern(s string) string {
	if !ContainsThai(s) {
		return ""
	}
	syl := parseSyllable(s)
	r := string(syl.rest)
	has := func(sub string) bool { return strings.Contains(r, sub) }

	if has("ำ") {
		return "อำ"
	}
	switch syl.lead {
	case 'ใ', 'ไ':
		return "ไอ"
	case 'เ':
		switch {
		case strings.HasSuffix(r, "าะ"):
			return "เอาะ"
		case strings.HasSuffix(r, "า"):
			return "เอา"
		case has("ีย"):
			return shortIf(has("ะ"), "เอียะ", "เอีย")
		case has("ื"):
			return shortIf(has("ะ"), "เอือะ", "เอือ")
		case strings.HasPrefix(r, "อ"):
			return shortIf(has("ะ"), "เออะ", "เออ")
		case has("ิ"), r == "ย":
			return "เออ"
		case has("็"), has("ะ"):
			return "เอะ"
		}
		return "เอ"
	case 'แ':
		return shortIf(has("็") || has("ะ"), "แอะ", "แอ")
	case 'โ':
		return shortIf(has("ะ"), "โอะ", "โอ")
	}

	switch {
	case has("ฤ"):
		return "อึ"
	case has("ัว"):
		return shortIf(has("ะ"), "อัวะ", "อัว")
	case has("ั"):
		return "อะ"
	case has("า"):
		return "อา"
	case has("ะ"):
		return "อะ"
	case has("ิ"):
		return "อิ"
	case has("ี"):
		return "อี"
	case has("ึ"):
		return "อึ"
	case has("ื"):
		return "อือ"
	case has("ุ"):
		return "อุ"
	case has("ู"):
		return "อู"
	case has("็"):
		return "เอาะ"
	case r == "":
		return "ออ"
	case strings.HasPrefix(r, "อ"):
		return "ออ"
	case strings.HasPrefix(r, "รร"):
		return "อะ"
	case strings.HasPrefix(r, "ว") && len(syl.rest) > 1:
		return "อัว"
	}
	return "โอะ"
}

func shortIf(short bool, shortForm, longForm string) string {
	if short {
		return shortForm
	}
	return longForm
}

// Marttra classifies the final sound of a single spelled syllable.
func Marttra(s string) string {
	switch VowelPattern(s) {
	case "อำ":
		return MaeKom
	case "ไอ":
		return MaeKoey
	case "เอา":
		return MaeKoew
	}
	rest := parseSyllable(s).rest
	n := len(rest)
	if n == 0 {
		return MaeKaa
	}
	last := rest[n-1]
	switch {
	case !IsConsonant(last), last == 'อ':
		return MaeKaa
	case last == 'ว' && n >= 2 && rest[n-2] == 'ั':
		return MaeKaa
	case last == 'ย' && n >= 2 && rest[n-2] == 'ี':
		return MaeKaa
	case last == 'ร' && n >= 2 && rest[n-2] == 'ร':
		return MaeKon
	}
	if c, ok := finalClass[last]; ok {
		return c
	}
	return MaeKaa
}

// RhymeClass identifies the set of syllables that rhyme in klon verse.
type RhymeClass struct {
	Sara    string `json:"sara"`
	Marttra string `json:"marttra"`
}

// String renders the class as "sara/marttra".
func (c RhymeClass) String() string {
	return c.Sara + "/" + c.Marttra
}

// RhymeClassOf returns the rhyme class of the last syllable of a hyphen-delimited
// pronunciation. อำ, ไอ and เอา are folded onto อะ with their final sound.
func RhymeClassOf(pronunciation string) RhymeClass {
	sylls := strings.Split(pronunciation, "-")
	last := strings.TrimSpace(sylls[len(sylls)-1])
	c := RhymeClass{Sara: VowelPattern(last), Marttra: Marttra(last)}
	switch c.Sara {
	case "อำ", "ไอ", "เอา":
		c.Sara = "อะ"
	}
	return c
}
