package thai

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed data/lexicon.tsv
var lexiconTSV string

// Entry is a dictionary word with its hyphen-delimited pronunciation.
type Entry struct {
	Word          string
	Pronunciation string
}

// Lexicon maps words to pronunciations.
type Lexicon struct {
	entries map[string]string
}

// NewLexicon creates an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{entries: make(map[string]string)}
}

// Add records a pronunciation for word, replacing any earlier one. An empty
// pronunciation means the word is read as written.
func (l *Lexicon) Add(word, pronunciation string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	if pronunciation == "" {
		pronunciation = word
	}
	l.entries[word] = strings.ReplaceAll(pronunciation, string(Phinthu), "")
}

// Lookup returns the pronunciation of word.
func (l *Lexicon) Lookup(word string) (string, bool) {
	p, ok := l.entries[word]
	return p, ok
}

// Len returns the number of words.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns every entry sorted by word.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for w, p := range l.entries {
		out = append(out, Entry{Word: w, Pronunciation: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// WordTrie builds a trie of every word.
func (l *Lexicon) WordTrie() *Trie {
	t := NewTrie()
	for w := range l.entries {
		t.Add(w)
	}
	return t
}

// SyllableTrie builds a trie of orthographic syllables: the syllables of every word
// that is spelled exactly as its pronunciation.
func (l *Lexicon) SyllableTrie() *Trie {
	t := NewTrie()
	for w, p := range l.entries {
		if strings.ReplaceAll(p, "-", "") != w {
			continue
		}
		for _, s := range strings.Split(p, "-") {
			t.Add(s)
		}
	}
	return t
}

// LoadLexicon reads a tab-separated lexicon.
// Format: word<TAB>pronunciation, or a bare word read as written. Blank lines and
// lines starting with # are skipped.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	l := NewLexicon()
	if err := l.Read(r); err != nil {
		return nil, err
	}
	return l, nil
}

// Read adds the entries of a tab-separated lexicon to l.
func (l *Lexicon) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) > 2 {
			return fmt.Errorf("line %d: expected at most 2 tab-separated fields, got %d", lineNum, len(parts))
		}
		pron := ""
		if len(parts) == 2 {
			pron = strings.TrimSpace(parts[1])
		}
		if strings.Contains(parts[0], " ") {
			return fmt.Errorf("line %d: word %q contains a space", lineNum, parts[0])
		}
		l.Add(parts[0], pron)
	}
	return scanner.Err()
}

// LoadLexiconFile is a convenience wrapper that opens a file path.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadLexicon(f)
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// DefaultLexicon returns the built-in lexicon. The result is shared; do not modify it.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		l, err := LoadLexicon(strings.NewReader(lexiconTSV))
		if err != nil {
			panic(fmt.Sprintf("thai: embedded lexicon: %v", err))
		}
		defaultLexicon = l
	})
	return defaultLexicon
}
