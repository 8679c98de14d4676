package solver

import (
	"container/heap"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/box"
)

// bfState is a partial solution on the best-first frontier. seq breaks score
// ties by insertion order, which keeps the search deterministic.
type bfState struct {
	words  []string
	used   box.LetterSet
	ending byte
	score  float64
	seq    int
}

type bfFrontier []*bfState

func (f bfFrontier) Len() int { return len(f) }
func (f bfFrontier) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score > f[j].score
	}
	return f[i].seq < f[j].seq
}
func (f bfFrontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *bfFrontier) Push(x interface{}) { *f = append(*f, x.(*bfState)) }
func (f *bfFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	st := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return st
}

// SolveBestFirst searches with a priority queue of partial solutions scored
// by the heuristic instead of plain depth-first order. It prunes branches
// that cannot beat the shortest complete solution found so far, honors
// Options.TimeLimit if set, and returns solutions sorted by word count
// (ties in discovery order). Pass nil to use DefaultHeuristic.
func (s *Solver) SolveBestFirst(h *CompositeHeuristic) ([]Solution, error) {
	if s.dict.WordCount() == 0 {
		return nil, ErrEmptyDictionary
	}
	if h == nil {
		h = DefaultHeuristic()
	}
	words := s.FindWords()
	ctx := NewSearchContext(s.box, words)
	target := s.box.LetterSet()

	var deadline time.Time
	if s.opts.TimeLimit > 0 {
		deadline = time.Now().Add(s.opts.TimeLimit)
	}

	frontier := &bfFrontier{}
	heap.Init(frontier)
	nextSeq := 0
	push := func(st *bfState) {
		st.seq = nextSeq
		nextSeq++
		heap.Push(frontier, st)
	}
	push(&bfState{})

	var found []Solution
	best := s.opts.MaxWords + 1
	explored := 0
	for frontier.Len() > 0 {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			log.Debug().Int("explored", explored).Msg("time limit reached")
			break
		}
		st := heap.Pop(frontier).(*bfState)
		explored++

		if st.used == target {
			found = append(found, Solution{Words: st.words, Letters: st.used})
			if len(st.words) < best {
				best = len(st.words)
			}
			if len(found) >= s.opts.SolutionLimit {
				break
			}
			continue
		}
		if len(st.words) >= best || len(st.words) >= s.opts.MaxWords {
			continue
		}
		s.expand(st, ctx, h, target, best, push)
	}
	log.Debug().Int("explored", explored).Int("solutions", len(found)).
		Msg("best-first search done")

	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].Words) < len(found[j].Words)
	})
	return found, nil
}

// expand pushes every useful successor of st onto the frontier.
func (s *Solver) expand(st *bfState, ctx *SearchContext, h *CompositeHeuristic,
	target box.LetterSet, best int, push func(*bfState)) {

	var starts []byte
	if st.ending != 0 {
		starts = []byte{st.ending}
	} else if s.opts.StartLetter != 0 {
		starts = []byte{upper(s.opts.StartLetter)}
	} else {
		starts = s.box.Letters()
	}

	remaining := target &^ st.used
	for _, start := range starts {
		candidates := ctx.Words.StartingWith(start)
		// Word scores only break ties among equal state scores, via push
		// order; the frontier is ordered by state score.
		scored := make([]scoredWord, 0, len(candidates))
		for _, w := range candidates {
			scored = append(scored, scoredWord{w, h.ScoreWord(w, remaining, ctx)})
		}
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})
		for _, sw := range scored {
			w := sw.word
			used := st.used | box.LetterSetOf(w)
			if used == st.used {
				continue
			}
			if len(st.words)+1 >= best && used != target {
				continue
			}
			next := &bfState{
				words:  append(append([]string(nil), st.words...), w),
				used:   used,
				ending: upper(w[len(w)-1]),
			}
			next.score = h.ScoreState(Partial{
				WordCount: len(next.words),
				Used:      next.used,
				Target:    target,
				Ending:    next.ending,
			}, ctx)
			push(next)
		}
	}
}

type scoredWord struct {
	word  string
	score float64
}
