package thai

import (
	"context"
	"slices"
)

// RhymeIndex groups lexicon words by rhyme class. It is read-only once built.
type RhymeIndex struct {
	classes map[RhymeClass][]string
}

// NewRhymeIndex indexes every entry of lex by the rhyme class of its pronunciation.
func NewRhymeIndex(lex *Lexicon) *RhymeIndex {
	x := &RhymeIndex{classes: make(map[RhymeClass][]string)}
	for _, e := range lex.Entries() {
		c := RhymeClassOf(e.Pronunciation)
		x.classes[c] = append(x.classes[c], e.Word)
	}
	return x
}

// Class returns the words of class c in lexical order.
func (x *RhymeIndex) Class(c RhymeClass) []string {
	return slices.Clone(x.classes[c])
}

// RhymeMembers returns the words sharing the rhyme class of a spelled syllable.
func (x *RhymeIndex) RhymeMembers(ctx context.Context, syllable string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return x.Class(RhymeClassOf(syllable)), nil
}
