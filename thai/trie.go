package thai

import "sort"

// Trie is a rune trie of dictionary words. It is not safe for concurrent writes;
// build it once, then share it read-only.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode
	end      bool
}

// NewTrie creates a trie holding words.
func NewTrie(words ...string) *Trie {
	t := &Trie{root: &trieNode{}}
	for _, w := range words {
		t.Add(w)
	}
	return t
}

// Add inserts word. Empty words are ignored.
func (t *Trie) Add(word string) {
	if word == "" {
		return
	}
	n := t.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*trieNode)
		}
		next, ok := n.children[r]
		if !ok {
			next = &trieNode{}
			n.children[r] = next
		}
		n = next
	}
	if !n.end {
		n.end = true
		t.size++
	}
}

// Has reports whether word was added.
func (t *Trie) Has(word string) bool {
	n := t.find(word)
	return n != nil && n.end
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) find(prefix string) *trieNode {
	n := t.root
	for _, r := range prefix {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}

// Prefix returns up to limit words starting with prefix, in lexical order.
// A limit <= 0 returns every match.
func (t *Trie) Prefix(prefix string, limit int) []string {
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	var out []string
	var walk func(n *trieNode, acc []rune) bool
	walk = func(n *trieNode, acc []rune) bool {
		if n.end {
			out = append(out, string(acc))
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, r := range keys {
			if !walk(n.children[r], append(acc, r)) {
				return false
			}
		}
		return true
	}
	walk(n, []rune(prefix))
	return out
}

// Matches returns the end offsets (exclusive) of every word in the trie that
// starts at runes[i], shortest first.
func (t *Trie) Matches(runes []rune, i int) []int {
	var ends []int
	n := t.root
	for j := i; j < len(runes); j++ {
		next, ok := n.children[runes[j]]
		if !ok {
			break
		}
		n = next
		if n.end {
			ends = append(ends, j+1)
		}
	}
	return ends
}
