// Package wordlist reads dictionary word lists for the solver.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Load reads a dictionary file, one word per line, keeping words that are
// purely alphabetic and at least minLength letters long. Words are
// lowercased.
func Load(filename string, minLength int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	words, err := FromReader(file, minLength)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", filename).Int("words", len(words)).
		Msg("loaded word list")
	return words, nil
}

// FromReader reads a word list from r with the same filtering as Load.
func FromReader(r io.Reader, minLength int) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := strings.ToLower(fields[0])
		if len(word) >= minLength && alphabetic(word) {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}

func alphabetic(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
