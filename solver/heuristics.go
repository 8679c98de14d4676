package solver

import (
	"math"

	"github.com/domino14/letterbox/box"
)

// SearchContext carries the precomputed information heuristics score
// against: the box, the discovered-word index, and letter frequencies across
// the discovered words.
type SearchContext struct {
	Box   *box.Box
	Words *WordIndex

	letterFreq [26]int
}

func NewSearchContext(b *box.Box, words *WordIndex) *SearchContext {
	ctx := &SearchContext{Box: b, Words: words}
	for _, w := range words.Words() {
		for i := 0; i < len(w); i++ {
			c := upper(w[i])
			if c >= 'A' && c <= 'Z' {
				ctx.letterFreq[c-'A']++
			}
		}
	}
	return ctx
}

// LetterFrequency returns how many times the letter appears across all
// discovered words.
func (ctx *SearchContext) LetterFrequency(c byte) int {
	c = upper(c)
	if c < 'A' || c > 'Z' {
		return 0
	}
	return ctx.letterFreq[c-'A']
}

// Partial is the read-only view of a partial solution that state heuristics
// score.
type Partial struct {
	WordCount int
	Used      box.LetterSet
	Target    box.LetterSet
	// Ending is the last letter of the last word, or 0 before the first
	// word.
	Ending byte
}

// Remaining returns the letters still needed for coverage.
func (p Partial) Remaining() box.LetterSet {
	return p.Target &^ p.Used
}

// A WordHeuristic scores a candidate word against the letters a partial
// solution still needs. Higher is better.
type WordHeuristic interface {
	ScoreWord(word string, remaining box.LetterSet, ctx *SearchContext) float64
}

// A StateHeuristic scores how promising a partial solution is. Higher is
// better.
type StateHeuristic interface {
	ScoreState(p Partial, ctx *SearchContext) float64
}

// RareLetterScorer favors words that cover rare letters from the remaining
// set; rarity is inverse frequency across the discovered words.
type RareLetterScorer struct{}

func (RareLetterScorer) ScoreWord(word string, remaining box.LetterSet, ctx *SearchContext) float64 {
	score := 0.0
	for i := 0; i < len(word); i++ {
		if remaining.Has(word[i]) {
			score += 1.0 / float64(ctx.LetterFrequency(word[i])+1)
		}
	}
	return score
}

// LengthScorer favors long words that cover many of the remaining letters.
type LengthScorer struct{}

func (LengthScorer) ScoreWord(word string, remaining box.LetterSet, ctx *SearchContext) float64 {
	covered := (box.LetterSetOf(word) & remaining).Count()
	return float64(covered * len(word))
}

// CommonEndingScorer favors words ending in letters that many discovered
// words can continue from.
type CommonEndingScorer struct{}

func (CommonEndingScorer) ScoreWord(word string, remaining box.LetterSet, ctx *SearchContext) float64 {
	if word == "" {
		return 0
	}
	return float64(len(ctx.Words.StartingWith(word[len(word)-1])))
}

// ProgressScorer rewards coverage efficiency: letters covered per word used.
type ProgressScorer struct{}

func (ProgressScorer) ScoreState(p Partial, ctx *SearchContext) float64 {
	if p.WordCount == 0 {
		return 0
	}
	return float64(p.Used.Count()) / float64(p.WordCount)
}

// CompletionScorer estimates greedily how many more words a partial solution
// needs, and rewards states that look close to done.
type CompletionScorer struct{}

func (CompletionScorer) ScoreState(p Partial, ctx *SearchContext) float64 {
	remaining := p.Remaining()
	if remaining == 0 {
		return math.Inf(1)
	}
	return 1.0 / float64(greedyEstimate(remaining, p.Ending, ctx)+1)
}

const (
	estimateMaxWords      = 10
	estimateMaxCandidates = 20
)

// greedyEstimate repeatedly picks the candidate word covering the most
// still-uncovered letters, following the chaining rule, until everything is
// covered or it gives up with a pessimistic estimate.
func greedyEstimate(remaining box.LetterSet, ending byte, ctx *SearchContext) int {
	uncovered := remaining
	needed := 0
	current := ending
	for uncovered != 0 && needed < estimateMaxWords {
		var candidates []string
		if current != 0 {
			candidates = ctx.Words.StartingWith(current)
		}
		if len(candidates) == 0 {
			for _, c := range ctx.Box.Letters() {
				if uncovered.Has(c) {
					candidates = append(candidates, ctx.Words.StartingWith(c)...)
				}
			}
		}
		if len(candidates) > estimateMaxCandidates {
			candidates = candidates[:estimateMaxCandidates]
		}
		var best string
		bestCoverage := 0
		for _, w := range candidates {
			coverage := (box.LetterSetOf(w) & uncovered).Count()
			if coverage > bestCoverage {
				bestCoverage = coverage
				best = w
			}
		}
		if best == "" {
			return estimateMaxWords
		}
		uncovered &^= box.LetterSetOf(best)
		current = best[len(best)-1]
		needed++
	}
	return needed
}

// WeightedWord pairs a word heuristic with its weight.
type WeightedWord struct {
	H      WordHeuristic
	Weight float64
}

// WeightedState pairs a state heuristic with its weight.
type WeightedState struct {
	H      StateHeuristic
	Weight float64
}

// CompositeHeuristic combines weighted word and state heuristics.
type CompositeHeuristic struct {
	Word  []WeightedWord
	State []WeightedState
}

// DefaultHeuristic returns a balanced combination.
func DefaultHeuristic() *CompositeHeuristic {
	return &CompositeHeuristic{
		Word: []WeightedWord{
			{RareLetterScorer{}, 1.0},
			{LengthScorer{}, 2.0},
			{CommonEndingScorer{}, 0.5},
		},
		State: []WeightedState{
			{ProgressScorer{}, 3.0},
			{CompletionScorer{}, 5.0},
		},
	}
}

func (ch *CompositeHeuristic) ScoreWord(word string, remaining box.LetterSet, ctx *SearchContext) float64 {
	total := 0.0
	for _, wh := range ch.Word {
		total += wh.Weight * wh.H.ScoreWord(word, remaining, ctx)
	}
	return total
}

func (ch *CompositeHeuristic) ScoreState(p Partial, ctx *SearchContext) float64 {
	total := 0.0
	for _, sh := range ch.State {
		total += sh.Weight * sh.H.ScoreState(p, ctx)
	}
	return total
}
