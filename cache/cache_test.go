package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/letterbox/config"
	"github.com/domino14/letterbox/trie"
)

func TestGetLoadsOnce(t *testing.T) {
	loads := 0
	load := func(cfg *config.Config, key string) (*trie.Trie, error) {
		loads++
		return trie.FromWords([]string{"cat", "dog"}), nil
	}
	c := New()
	cfg := &config.Config{}

	first, err := c.Get(cfg, "dict-a", load)
	require.NoError(t, err)
	second, err := c.Get(cfg, "dict-a", load)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)

	_, err = c.Get(cfg, "dict-b", load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestGetLoadError(t *testing.T) {
	wanted := errors.New("no such dictionary")
	c := New()
	_, err := c.Get(&config.Config{}, "missing", func(cfg *config.Config, key string) (*trie.Trie, error) {
		return nil, wanted
	})
	assert.ErrorIs(t, err, wanted)
}
