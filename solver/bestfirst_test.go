package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/letterbox/box"
	"github.com/domino14/letterbox/trie"
)

func TestSolveBestFirstPrefersShortest(t *testing.T) {
	is := is.New(t)
	b := mustBox(t, "AB", "CD", "EF", "GH")
	dict := trie.FromWords([]string{"aceg", "gbdfh", "acegbdfh"})
	s := New(dict, b, Options{})

	sols, err := s.SolveBestFirst(nil)
	is.NoErr(err)
	// Once the one-word cover is found, longer chains are pruned.
	is.Equal(len(sols), 1)
	is.Equal(sols[0].Words, []string{"acegbdfh"})
	is.Equal(sols[0].Letters, b.LetterSet())
}

func TestSolveBestFirstSortedByLength(t *testing.T) {
	is := is.New(t)
	b := mustBox(t, "AB", "CD", "EF", "GH")
	dict := trie.FromWords([]string{"aceg", "gbdfh"})
	s := New(dict, b, Options{})

	sols, err := s.SolveBestFirst(nil)
	is.NoErr(err)
	is.Equal(len(sols), 1)
	is.Equal(sols[0].Words, []string{"aceg", "gbdfh"})
	for i := 0; i+1 < len(sols); i++ {
		is.True(len(sols[i].Words) <= len(sols[i+1].Words))
	}
}

func TestSolveBestFirstEmptyDictionary(t *testing.T) {
	is := is.New(t)
	b := mustBox(t, "AB", "CD", "EF", "GH")
	_, err := New(trie.New(), b, Options{}).SolveBestFirst(nil)
	is.True(errors.Is(err, ErrEmptyDictionary))
}

func TestSolveBestFirstDeterministic(t *testing.T) {
	is := is.New(t)
	b := mustBox(t, "AB", "CD", "EF", "GH")
	dict := trie.FromWords([]string{"aceg", "gbdfh", "acegbdfh", "ace",
		"egb", "bdfh", "hca"})
	s := New(dict, b, Options{MaxWords: 4, SolutionLimit: 8})

	first, err := s.SolveBestFirst(nil)
	is.NoErr(err)
	second, err := s.SolveBestFirst(nil)
	is.NoErr(err)
	is.Equal(first, second)
}

func testContext(t *testing.T) (*box.Box, *SearchContext) {
	b := mustBox(t, "AB", "CD", "EF", "GH")
	dict := trie.FromWords([]string{"aceg", "gbdfh"})
	s := New(dict, b, Options{})
	return b, NewSearchContext(b, s.FindWords())
}

func TestLetterFrequency(t *testing.T) {
	is := is.New(t)
	_, ctx := testContext(t)
	// "aceg" + "gbdfh": g appears twice, a once, z never.
	is.Equal(ctx.LetterFrequency('g'), 2)
	is.Equal(ctx.LetterFrequency('A'), 1)
	is.Equal(ctx.LetterFrequency('z'), 0)
}

func TestCommonEndingScorer(t *testing.T) {
	is := is.New(t)
	_, ctx := testContext(t)
	// One discovered word starts with g, none with h.
	is.Equal(CommonEndingScorer{}.ScoreWord("aceg", 0, ctx), 1.0)
	is.Equal(CommonEndingScorer{}.ScoreWord("gbdfh", 0, ctx), 0.0)
}

func TestLengthScorer(t *testing.T) {
	is := is.New(t)
	b, ctx := testContext(t)
	remaining := b.LetterSet()
	// All four letters of "aceg" are remaining: 4 * len 4.
	is.Equal(LengthScorer{}.ScoreWord("aceg", remaining, ctx), 16.0)
	// Nothing remaining, nothing to cover.
	is.Equal(LengthScorer{}.ScoreWord("aceg", 0, ctx), 0.0)
}

func TestRareLetterScorer(t *testing.T) {
	is := is.New(t)
	b, ctx := testContext(t)
	remaining := b.LetterSet()
	rare := RareLetterScorer{}
	// Letters appearing once score higher than letters appearing twice.
	is.True(rare.ScoreWord("a", remaining, ctx) > rare.ScoreWord("g", remaining, ctx))
	is.Equal(rare.ScoreWord("a", 0, ctx), 0.0)
}

func TestProgressScorer(t *testing.T) {
	is := is.New(t)
	b, ctx := testContext(t)
	p := Partial{WordCount: 2, Used: b.LetterSet(), Target: b.LetterSet()}
	is.Equal(ProgressScorer{}.ScoreState(p, ctx), 4.0)
	is.Equal(ProgressScorer{}.ScoreState(Partial{}, ctx), 0.0)
}

func TestCompletionScorer(t *testing.T) {
	is := is.New(t)
	b, ctx := testContext(t)
	target := b.LetterSet()

	complete := Partial{WordCount: 1, Used: target, Target: target}
	is.True(math.IsInf(CompletionScorer{}.ScoreState(complete, ctx), 1))

	// From "aceg" the greedy estimate chains straight into "gbdfh".
	after := Partial{WordCount: 1, Used: box.LetterSetOf("aceg"),
		Target: target, Ending: 'G'}
	is.Equal(CompletionScorer{}.ScoreState(after, ctx), 0.5)

	// No candidates at all: pessimistic estimate.
	stuck := Partial{WordCount: 1, Used: box.LetterSetOf("aceg"),
		Target: target, Ending: 'C'}
	score := CompletionScorer{}.ScoreState(stuck, ctx)
	is.True(score > 0 && score <= 1)
}
