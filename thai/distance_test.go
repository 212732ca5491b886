package thai

import (
	"context"
	"testing"
)

func TestRomanize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"มา", "maa"},
		{"ตา", "taa"},
		{"รัก", "rak"},
		{"ใจ", "chai"},
		{"หนาว", "naaw"},
		{"กลาง", "klaang"},
		{"ความ-รัก", "khwaam-rak"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Romanize(tt.input); got != tt.want {
				t.Errorf("Romanize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScorer_Distances(t *testing.T) {
	lex := NewLexicon()
	for _, w := range []string{"มา", "ตา", "ฟ้า", "งาน"} {
		lex.Add(w, "")
	}
	s := NewScorer(NewPronouncer(lex, nil))
	got, err := s.Distances(context.Background(), "มา", []string{"มา", "ตา", "งาน"})
	if err != nil {
		t.Fatalf("Distances: %v", err)
	}
	want := []float64{0, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("distance[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	empty, err := s.Distances(context.Background(), "มา", nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty candidates = %v, %v", empty, err)
	}
}
