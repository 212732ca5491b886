package klon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode"

	"sumpus.exe.dev/thai"
)

// spaceTokenizer treats every whitespace run and every other run as one token, so a
// test verse is written as hyphen-joined syllables and verses are space-separated.
type spaceTokenizer struct{}

func (spaceTokenizer) Words(text string) []string {
	var out []string
	runes := []rune(text)
	for i := 0; i < len(runes); {
		space := unicode.IsSpace(runes[i])
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) == space {
			j++
		}
		out = append(out, string(runes[i:j]))
		i = j
	}
	return out
}

func (t spaceTokenizer) Syllables(text string) []string { return t.Words(text) }

// mapPronouncer returns the stored pronunciation, or the word itself.
type mapPronouncer struct {
	prons map[string]string
	fail  map[string]bool
}

func (p mapPronouncer) Pronounce(ctx context.Context, word string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.fail[word] {
		return "", errors.New("no pronunciation")
	}
	if pr, ok := p.prons[word]; ok {
		return pr, nil
	}
	return word, nil
}

type mapDictionary struct {
	members map[string][]string
	err     error
}

func (d mapDictionary) RhymeMembers(_ context.Context, syllable string) ([]string, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.members[syllable], nil
}

// mapScorer scores candidates from a table; unknown candidates score 1.
type mapScorer struct {
	scores map[string]float64
	short  bool // return one score too few
	err    error
}

func (s mapScorer) Distances(_ context.Context, _ string, candidates []string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		score, ok := s.scores[c]
		if !ok {
			score = 1
		}
		out = append(out, score)
	}
	if s.short && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func testDeps() Deps {
	return Deps{
		Tokenizer:  spaceTokenizer{},
		Pronouncer: mapPronouncer{},
		Phonology:  VowelPatternFunc(thai.VowelPattern),
	}
}

func newTestEngine(t *testing.T, deps Deps, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRand(rand.NewPCG(1, 2)),
	}, opts...)
	e, err := NewEngine(deps, opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func verse(syllables ...string) string {
	return strings.Join(syllables, "-")
}

func poem(verses ...string) string {
	return strings.Join(verses, " ")
}

// goodStanza satisfies all seven pairs of the scheme.
var goodStanza = []string{
	verse("ก", "ก", "ก", "ก", "ก", "ก", "ก", "มา"),
	verse("ก", "ก", "ตา", "ก", "ก", "ก", "ก", "ดี"),
	verse("ก", "ก", "ก", "ก", "ก", "ก", "ก", "มี"),
	verse("ก", "ก", "สี", "ก", "ก", "ก", "ก", "ดู"),
	verse("ก", "ก", "ก", "ก", "ก", "ก", "ก", "มือ"),
	verse("ก", "ก", "คือ", "ก", "ก", "ก", "ก", "ปู"),
	verse("ก", "ก", "ก", "ก", "ก", "ก", "ก", "งู"),
	verse("ก", "ก", "รู", "ก", "ก", "ก", "ก", "ลา"),
}
