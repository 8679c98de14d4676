// Package box models the Letter Boxed puzzle square: the sides, the letters
// on them, and the adjacency rule that two consecutive letters of a word may
// never come from the same side.
package box

import (
	"fmt"
	"strings"
)

const (
	// MinSides is the fewest sides a box may have.
	MinSides = 2
	// MaxLettersPerSide bounds the size of a single side.
	MaxLettersPerSide = 8
)

// ConfigError describes an invalid box configuration. Side is the zero-based
// index of the offending side, or -1 when the problem is not specific to a
// single side.
type ConfigError struct {
	Side int
	Msg  string
}

func (e *ConfigError) Error() string {
	if e.Side < 0 {
		return "invalid box: " + e.Msg
	}
	return fmt.Sprintf("invalid box: side %d: %s", e.Side+1, e.Msg)
}

// Box is an immutable puzzle configuration. It is built once from the side
// strings and never mutated afterward, so it is safe to share across
// simultaneous solves.
type Box struct {
	sides   []string
	sideOf  [26]int8 // letter -> side index, -1 if absent
	letters []byte
}

// New builds a Box from side strings such as "ABC". Letters are
// case-normalized to uppercase. It returns a *ConfigError if there are fewer
// than MinSides sides, a side is empty, oversized or non-alphabetic, or any
// letter appears on more than one side.
func New(sides []string) (*Box, error) {
	if len(sides) < MinSides {
		return nil, &ConfigError{Side: -1,
			Msg: fmt.Sprintf("need at least %d sides, got %d", MinSides, len(sides))}
	}
	b := &Box{sides: make([]string, len(sides))}
	for i := range b.sideOf {
		b.sideOf[i] = -1
	}
	for si, s := range sides {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			return nil, &ConfigError{Side: si, Msg: "side is empty"}
		}
		if len(s) > MaxLettersPerSide {
			return nil, &ConfigError{Side: si,
				Msg: fmt.Sprintf("side has %d letters, maximum is %d", len(s), MaxLettersPerSide)}
		}
		for j := 0; j < len(s); j++ {
			c := s[j]
			if c < 'A' || c > 'Z' {
				return nil, &ConfigError{Side: si,
					Msg: fmt.Sprintf("non-alphabetic character %q", rune(c))}
			}
			if b.sideOf[c-'A'] != -1 {
				return nil, &ConfigError{Side: si,
					Msg: fmt.Sprintf("duplicate letter %c", c)}
			}
			b.sideOf[c-'A'] = int8(si)
			b.letters = append(b.letters, c)
		}
		b.sides[si] = s
	}
	return b, nil
}

// Sides returns the normalized side strings.
func (b *Box) Sides() []string {
	out := make([]string, len(b.sides))
	copy(out, b.sides)
	return out
}

// Contains reports whether the letter is anywhere in the box.
func (b *Box) Contains(c byte) bool {
	c = upper(c)
	return c >= 'A' && c <= 'Z' && b.sideOf[c-'A'] != -1
}

// CanFollow reports whether next may legally follow prev within a word: both
// letters must be in the box, on different sides. A letter can never follow
// itself.
func (b *Box) CanFollow(prev, next byte) bool {
	prev, next = upper(prev), upper(next)
	if !b.Contains(prev) || !b.Contains(next) {
		return false
	}
	return b.sideOf[prev-'A'] != b.sideOf[next-'A']
}

// Letters returns every box letter in box-definition order: sides in the
// order they were given, letters left to right within a side. The solver
// iterates in this order everywhere, which is what makes its output
// reproducible.
func (b *Box) Letters() []byte {
	out := make([]byte, len(b.letters))
	copy(out, b.letters)
	return out
}

// NumLetters returns the total number of letters in the box.
func (b *Box) NumLetters() int {
	return len(b.letters)
}

// LetterSet returns the coverage target: the set of every letter in the box.
func (b *Box) LetterSet() LetterSet {
	var ls LetterSet
	for _, c := range b.letters {
		ls = ls.Add(c)
	}
	return ls
}

// ValidWord reports whether every letter of word is in the box and every
// adjacent pair satisfies CanFollow. The search itself never needs this; it
// only ever generates valid words. Collaborators use it to check words from
// outside.
func (b *Box) ValidWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !b.Contains(word[i]) {
			return false
		}
	}
	for i := 0; i+1 < len(word); i++ {
		if !b.CanFollow(word[i], word[i+1]) {
			return false
		}
	}
	return true
}

func (b *Box) String() string {
	return strings.Join(b.sides, " ")
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
