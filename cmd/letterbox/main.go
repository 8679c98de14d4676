// Command letterbox solves a Letter Boxed puzzle in one shot:
//
//	letterbox -dictionary /usr/share/dict/words RME WCL TGK API
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/letterbox/box"
	"github.com/domino14/letterbox/solver"
	"github.com/domino14/letterbox/trie"
	"github.com/domino14/letterbox/wordlist"
)

func main() {
	dictionary := flag.String("dictionary", "/usr/share/dict/american-english",
		"dictionary file, one word per line")
	maxWords := flag.Int("max-words", solver.DefaultMaxWords,
		"maximum number of words in a solution")
	minLength := flag.Int("min-length", solver.DefaultMinWordLength,
		"minimum word length")
	limit := flag.Int("limit", solver.DefaultSolutionLimit,
		"stop after this many solutions")
	bestFirst := flag.Bool("best-first", false,
		"use the heuristic best-first search")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	sides := flag.Args()
	if len(sides) < box.MinSides {
		fmt.Fprintf(os.Stderr, "usage: letterbox [flags] SIDE SIDE [SIDE...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	b, err := box.New(sides)
	if err != nil {
		log.Fatal().Err(err).Msg("bad box configuration")
	}
	words, err := wordlist.Load(*dictionary, *minLength)
	if err != nil {
		log.Fatal().Err(err).Msg("could not read dictionary")
	}
	s := solver.New(trie.FromWords(words), b, solver.Options{
		MaxWords:      *maxWords,
		MinWordLength: *minLength,
		SolutionLimit: *limit,
	})

	var sols []solver.Solution
	if *bestFirst {
		sols, err = s.SolveBestFirst(nil)
	} else {
		sols, err = s.Solve()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}

	if len(sols) == 0 {
		fmt.Println("No solutions found.")
		return
	}
	fmt.Printf("Found %d solution(s):\n", len(sols))
	for i, sol := range sols {
		fmt.Printf("%d. %s (%d words, %d letters)\n",
			i+1, sol, len(sol.Words), sol.Letters.Count())
		missing := lo.Filter(b.Letters(), func(c byte, _ int) bool {
			return !sol.Letters.Has(c)
		})
		if len(missing) == 0 {
			fmt.Println("   complete: uses every letter in the box")
		} else {
			fmt.Printf("   missing letters: %s\n", string(missing))
		}
	}
}
