package thai

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer segments text into dictionary words or syllables. It is safe for
// concurrent use once built.
type Tokenizer struct {
	words     *Trie
	syllables *Trie
}

// NewTokenizer creates a tokenizer over a word dictionary and a syllable dictionary.
// A nil syllables trie falls back to words.
func NewTokenizer(words, syllables *Trie) *Tokenizer {
	if words == nil {
		words = NewTrie()
	}
	if syllables == nil {
		syllables = words
	}
	return &Tokenizer{words: words, syllables: syllables}
}

// Words splits text into word tokens. Every whitespace run becomes a single token,
// non-Thai runs are kept whole, and Thai runs are segmented by longest dictionary
// match; unknown clusters are merged into one token.
func (t *Tokenizer) Words(text string) []string {
	return segment(text, t.words)
}

// Syllables splits text the same way as Words but against the syllable dictionary.
func (t *Tokenizer) Syllables(text string) []string {
	return segment(text, t.syllables)
}

type runKind int

const (
	runSpace runKind = iota
	runThai
	runOther
)

func kindOf(r rune) runKind {
	switch {
	case unicode.IsSpace(r):
		return runSpace
	case IsThai(r):
		return runThai
	default:
		return runOther
	}
}

func segment(text string, dict *Trie) []string {
	runes := []rune(norm.NFC.String(text))
	var out []string
	for i := 0; i < len(runes); {
		kind := kindOf(runes[i])
		j := i + 1
		for j < len(runes) && kindOf(runes[j]) == kind {
			j++
		}
		if kind == runThai {
			out = append(out, segmentThai(runes[i:j], dict)...)
		} else {
			out = append(out, string(runes[i:j]))
		}
		i = j
	}
	return out
}

// segmentThai applies greedy longest matching that never splits a character cluster.
func segmentThai(runes []rune, dict *Trie) []string {
	bounds := clusterBounds(runes)
	isBound := make(map[int]bool, len(bounds))
	for _, b := range bounds {
		isBound[b] = true
	}

	var out []string
	unknown := -1 // start of the pending unknown run
	flush := func(end int) {
		if unknown >= 0 {
			out = append(out, string(runes[unknown:end]))
			unknown = -1
		}
	}

	for i := 0; i < len(runes); {
		best := -1
		for _, end := range dict.Matches(runes, i) {
			if isBound[end] {
				best = end
			}
		}
		if best > 0 {
			flush(i)
			out = append(out, string(runes[i:best]))
			i = best
			continue
		}
		if unknown < 0 {
			unknown = i
		}
		next := i + 1
		for !isBound[next] && next < len(runes) {
			next++
		}
		i = next
	}
	flush(len(runes))
	return out
}
