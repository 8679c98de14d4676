package box

import "math/bits"

// LetterSet is a bitmask over the letters A-Z, used to track which box
// letters a word sequence has covered so far.
type LetterSet uint32

// Add returns the set with the letter added. Letters outside A-Z (after
// uppercasing) are ignored.
func (ls LetterSet) Add(c byte) LetterSet {
	c = upper(c)
	if c < 'A' || c > 'Z' {
		return ls
	}
	return ls | 1<<(c-'A')
}

// Has reports whether the letter is in the set.
func (ls LetterSet) Has(c byte) bool {
	c = upper(c)
	if c < 'A' || c > 'Z' {
		return false
	}
	return ls&(1<<(c-'A')) != 0
}

// Count returns the number of letters in the set.
func (ls LetterSet) Count() int {
	return bits.OnesCount32(uint32(ls))
}

// LetterSetOf returns the set of letters appearing in word.
func LetterSetOf(word string) LetterSet {
	var ls LetterSet
	for i := 0; i < len(word); i++ {
		ls = ls.Add(word[i])
	}
	return ls
}
