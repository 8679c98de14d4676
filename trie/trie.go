// Package trie implements the prefix tree backing the solver's dictionary
// lookups. It answers exact-membership and prefix-continuation queries in
// time proportional to the query length.
package trie

// node owns the mapping from next letter to child. The whole tree belongs
// to its Trie; nodes are never handed out.
type node struct {
	children map[byte]*node
	end      bool
}

// Trie stores a set of lowercase words. Build it once, then treat it as
// read-only; a built Trie is safe to share across searches.
type Trie struct {
	root  *node
	words int
}

func New() *Trie {
	return &Trie{root: &node{}}
}

// FromWords builds a trie from a word list.
func FromWords(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds a word. Inserting the same word twice has no further effect,
// and inserting the empty string is a no-op.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		child, ok := n.children[c]
		if !ok {
			child = &node{}
			n.children[c] = child
		}
		n = child
	}
	if !n.end {
		n.end = true
		t.words++
	}
}

func (t *Trie) walk(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		n = n.children[s[i]]
		if n == nil {
			return nil
		}
	}
	return n
}

// Contains reports whether word was inserted exactly. Contains("") is
// always false.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	n := t.walk(word)
	return n != nil && n.end
}

// HasPrefix reports whether at least one inserted word starts with prefix.
// HasPrefix("") is always true, even for an empty trie.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// WordCount returns the number of distinct words inserted.
func (t *Trie) WordCount() int {
	return t.words
}
