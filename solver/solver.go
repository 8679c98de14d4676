// Package solver implements the Letter Boxed search: a word-discovery pass
// that walks the box and the dictionary trie together, and a
// sequence-assembly pass that chains discovered words into solutions
// covering every box letter. A best-first variant with heuristic scoring
// lives in bestfirst.go.
package solver

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/box"
	"github.com/domino14/letterbox/trie"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultMaxWords      = 5
	DefaultMinWordLength = 3
	DefaultSolutionLimit = 10
)

// ErrEmptyDictionary is returned when a solve is attempted over a trie with
// no words in it.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// Options configure a solve. The zero value gets the documented defaults.
type Options struct {
	// MaxWords is the hard bound on solution length.
	MaxWords int
	// MinWordLength is the minimum length of every word used.
	MinWordLength int
	// SolutionLimit stops the whole search once this many solutions have
	// been emitted.
	SolutionLimit int
	// StartLetter, if nonzero, constrains the first word of every solution
	// to begin with this letter. Otherwise any box letter may start one.
	StartLetter byte
	// TimeLimit bounds the best-first search only; Solve ignores it.
	// Zero means no limit.
	TimeLimit time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.MinWordLength <= 0 {
		o.MinWordLength = DefaultMinWordLength
	}
	if o.SolutionLimit <= 0 {
		o.SolutionLimit = DefaultSolutionLimit
	}
	return o
}

// Solution is a completed word chain whose letters cover the whole box.
type Solution struct {
	Words   []string
	Letters box.LetterSet
}

func (s Solution) String() string {
	return strings.Join(s.Words, " -> ")
}

// Solver runs searches over a dictionary trie and a box. Both collaborators
// are read-only here, so a Solver may be reused for any number of solves.
type Solver struct {
	dict *trie.Trie
	box  *box.Box
	opts Options
}

func New(dict *trie.Trie, b *box.Box, opts Options) *Solver {
	return &Solver{dict: dict, box: b, opts: opts.withDefaults()}
}

// Options returns the effective options, with defaults applied.
func (s *Solver) Options() Options {
	return s.opts
}

// Solve runs both search passes and returns up to SolutionLimit solutions in
// traversal order. An empty result is a successful outcome; the only error
// conditions are detected before the search starts.
func (s *Solver) Solve() ([]Solution, error) {
	if s.dict.WordCount() == 0 {
		return nil, ErrEmptyDictionary
	}
	words := s.FindWords()
	log.Debug().Int("words", words.Count()).Str("box", s.box.String()).
		Msg("word discovery done")

	a := &assembly{
		words:  words,
		target: s.box.LetterSet(),
		limit:  s.opts.SolutionLimit,
	}
	starts := s.box.Letters()
	if s.opts.StartLetter != 0 {
		starts = []byte{upper(s.opts.StartLetter)}
	}
	for _, c := range starts {
		if len(a.found) >= a.limit {
			break
		}
		s.assemble(a, c)
	}
	log.Debug().Int("solutions", len(a.found)).Msg("search done")
	return a.found, nil
}

// assembly is the mutable state of one sequence-assembly pass. The seq slice
// is the live search frame; completed sequences are copied out into found
// and never aliased back into the search.
type assembly struct {
	words  *WordIndex
	target box.LetterSet
	limit  int

	seq   []string
	used  box.LetterSet
	found []Solution
}

// assemble extends the current sequence with every discovered word starting
// at the given letter, in discovery order. A word must cover at least one
// letter not already used, or the branch is skipped.
func (s *Solver) assemble(a *assembly, start byte) {
	for _, w := range a.words.StartingWith(start) {
		used := a.used | box.LetterSetOf(w)
		if used == a.used {
			continue
		}
		prev := a.used
		a.seq = append(a.seq, w)
		a.used = used
		if used == a.target {
			a.found = append(a.found, Solution{
				Words:   append([]string(nil), a.seq...),
				Letters: used,
			})
		} else if len(a.seq) < s.opts.MaxWords {
			s.assemble(a, w[len(w)-1])
		}
		a.used = prev
		a.seq = a.seq[:len(a.seq)-1]
		if len(a.found) >= a.limit {
			return
		}
	}
}
