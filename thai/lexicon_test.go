package thai

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadLexicon(t *testing.T) {
	input := "# comment\n\nรัก\nสวัสดี\tสะ-หฺวัด-ดี\n"
	lex, err := LoadLexicon(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if lex.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", lex.Len())
	}
	if p, _ := lex.Lookup("รัก"); p != "รัก" {
		t.Errorf("bare word pronunciation = %q", p)
	}
	if p, _ := lex.Lookup("สวัสดี"); p != "สะ-หวัด-ดี" {
		t.Errorf("phinthu should be stripped, got %q", p)
	}
}

func TestLoadLexicon_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"too many fields", "รัก\tรัก\textra\n", "line 1"},
		{"space in word", "รัก\nรัก เธอ\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLexicon(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadLexiconFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lex.tsv")
	if err := os.WriteFile(path, []byte("ใจ\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lex, err := LoadLexiconFile(path)
	if err != nil {
		t.Fatalf("LoadLexiconFile: %v", err)
	}
	if _, ok := lex.Lookup("ใจ"); !ok {
		t.Error("expected ใจ to be loaded")
	}
	if _, err := LoadLexiconFile(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	if lex.Len() < 100 {
		t.Fatalf("built-in lexicon has only %d words", lex.Len())
	}
	if p, ok := lex.Lookup("สวัสดี"); !ok || p != "สะ-หวัด-ดี" {
		t.Errorf("Lookup(สวัสดี) = %q, %v", p, ok)
	}
	syl := lex.SyllableTrie()
	if !syl.Has("ความ") || !syl.Has("รัก") {
		t.Error("syllable trie should hold syllables of words spelled as pronounced")
	}
	if syl.Has("หวัด") {
		t.Error("syllables of respelled words should not be in the syllable trie")
	}
}

func TestPronouncer(t *testing.T) {
	lex := NewLexicon()
	lex.Add("สวัสดี", "สะ-หวัด-ดี")
	lex.Add("ความ", "")
	lex.Add("รัก", "")
	p := NewPronouncer(lex, nil)
	ctx := context.Background()

	tests := []struct {
		input string
		want  string
	}{
		{"สวัสดี", "สะ-หวัด-ดี"},
		{"ความรัก", "ความ-รัก"},
		{"   ", Blank},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Pronounce(ctx, tt.input)
			if err != nil {
				t.Fatalf("Pronounce: %v", err)
			}
			if got != tt.want {
				t.Errorf("Pronounce(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := p.Pronounce(cancelled, "รัก"); err == nil {
		t.Error("expected error on cancelled context")
	}
}
