package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReader(t *testing.T) {
	in := strings.Join([]string{
		"Apple",
		"bad-word",
		"ox",
		"cat extra ignored",
		"",
		"HELLO",
	}, "\n")
	words, err := FromReader(strings.NewReader(in), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "cat", "hello"}, words)
}

func TestFromReaderMinLength(t *testing.T) {
	in := "ox\ncat\nhouse\n"
	words, err := FromReader(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ox", "cat", "house"}, words)

	words, err = FromReader(strings.NewReader(in), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"house"}, words)
}

func TestFromReaderEmpty(t *testing.T) {
	words, err := FromReader(strings.NewReader(""), 3)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/dictionary", 3)
	assert.Error(t, err)
}
