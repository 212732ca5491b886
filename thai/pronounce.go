package thai

import (
	"context"
	"strings"
)

// Pronouncer converts words to hyphen-delimited syllable spellings.
type Pronouncer struct {
	lex *Lexicon
	tok *Tokenizer
}

// NewPronouncer creates a pronouncer backed by lex. Words missing from lex are split
// into orthographic syllables with tok.
func NewPronouncer(lex *Lexicon, tok *Tokenizer) *Pronouncer {
	if lex == nil {
		lex = NewLexicon()
	}
	if tok == nil {
		tok = NewTokenizer(lex.WordTrie(), lex.SyllableTrie())
	}
	return &Pronouncer{lex: lex, tok: tok}
}

// Pronounce returns the pronunciation of word. Whitespace-only input yields Blank;
// input without Thai letters is returned unchanged.
func (p *Pronouncer) Pronounce(ctx context.Context, word string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if IsBlank(word) {
		return Blank, nil
	}
	if pron, ok := p.lex.Lookup(word); ok {
		return pron, nil
	}
	if !ContainsThai(word) {
		return word, nil
	}
	sylls := p.tok.Syllables(word)
	for i, s := range sylls {
		if pron, ok := p.lex.Lookup(s); ok {
			sylls[i] = pron
		}
	}
	return strings.ReplaceAll(strings.Join(sylls, "-"), string(Phinthu), ""), nil
}
