package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAndHasPrefix(t *testing.T) {
	tr := New()
	words := []string{"cat", "cats", "car", "dog"}
	for _, w := range words {
		tr.Insert(w)
	}
	for _, w := range words {
		assert.True(t, tr.Contains(w), w)
		// every prefix of an inserted word, including the word itself
		for i := 1; i <= len(w); i++ {
			assert.True(t, tr.HasPrefix(w[:i]), w[:i])
		}
	}
	assert.False(t, tr.Contains("ca"))
	assert.False(t, tr.Contains("catsup"))
	assert.False(t, tr.HasPrefix("catsup"))
	assert.False(t, tr.HasPrefix("x"))
}

func TestInsertIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("cat")
	tr.Insert("cat")
	tr.Insert("cats")
	assert.Equal(t, 2, tr.WordCount())
	assert.True(t, tr.Contains("cat"))
}

func TestEmptyString(t *testing.T) {
	tr := New()
	assert.True(t, tr.HasPrefix(""))
	assert.False(t, tr.Contains(""))
	tr.Insert("")
	assert.Equal(t, 0, tr.WordCount())
	assert.False(t, tr.Contains(""))

	tr.Insert("ox")
	assert.True(t, tr.HasPrefix(""))
}

func TestFromWords(t *testing.T) {
	tr := FromWords([]string{"alpha", "beta", "beta"})
	assert.Equal(t, 2, tr.WordCount())
	assert.True(t, tr.Contains("alpha"))
	assert.True(t, tr.HasPrefix("bet"))
}
