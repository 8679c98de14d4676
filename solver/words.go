package solver

// WordIndex holds the words found by the discovery pass, grouped by first
// and by last letter. Every list is in discovery order, which is fixed by
// the box-definition letter order, so repeated discovery over the same
// inputs yields identical lists.
type WordIndex struct {
	words   []string
	byStart map[byte][]string
	byEnd   map[byte][]string
}

func newWordIndex() *WordIndex {
	return &WordIndex{
		byStart: make(map[byte][]string),
		byEnd:   make(map[byte][]string),
	}
}

func (wi *WordIndex) add(word string) {
	wi.words = append(wi.words, word)
	first := upper(word[0])
	last := upper(word[len(word)-1])
	wi.byStart[first] = append(wi.byStart[first], word)
	wi.byEnd[last] = append(wi.byEnd[last], word)
}

// StartingWith returns the discovered words beginning with the letter, in
// discovery order. The returned slice is shared; do not modify it.
func (wi *WordIndex) StartingWith(c byte) []string {
	return wi.byStart[upper(c)]
}

// EndingWith returns the discovered words ending with the letter.
func (wi *WordIndex) EndingWith(c byte) []string {
	return wi.byEnd[upper(c)]
}

// Words returns all discovered words in discovery order. The returned slice
// is shared; do not modify it.
func (wi *WordIndex) Words() []string {
	return wi.words
}

// Count returns the number of discovered words.
func (wi *WordIndex) Count() int {
	return len(wi.words)
}

// FindWords runs the word-discovery pass: a depth-first walk from every box
// letter, extending the current prefix one letter at a time through letters
// the box allows next, and abandoning a branch as soon as no dictionary word
// starts with the prefix. A prefix is recorded as a word whenever it is at
// least MinWordLength long and is itself in the dictionary. There is no
// depth cap beyond the dictionary's own prefix structure.
func (s *Solver) FindWords() *WordIndex {
	wi := newWordIndex()
	for _, c := range s.box.Letters() {
		s.discover(wi, string(lower(c)), c)
	}
	return wi
}

func (s *Solver) discover(wi *WordIndex, prefix string, last byte) {
	if len(prefix) >= s.opts.MinWordLength && s.dict.Contains(prefix) {
		wi.add(prefix)
	}
	if !s.dict.HasPrefix(prefix) {
		return
	}
	for _, c := range s.box.Letters() {
		if s.box.CanFollow(last, c) {
			s.discover(wi, prefix+string(lower(c)), c)
		}
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
