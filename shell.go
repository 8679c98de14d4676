package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/letterbox/box"
	"github.com/domino14/letterbox/cache"
	"github.com/domino14/letterbox/config"
	"github.com/domino14/letterbox/solver"
	"github.com/domino14/letterbox/trie"
	"github.com/domino14/letterbox/wordlist"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "solve <sides...> - solve a box, e.g. solve RME WCL TGK API\n")
	io.WriteString(w, "bestfirst <sides...> - solve with the heuristic best-first search\n")
	io.WriteString(w, "words <letter> - list words from the last solve starting with letter\n")
	io.WriteString(w, "ending <letter> - list words from the last solve ending with letter\n")
	io.WriteString(w, "set <option> <n> - set max-words, min-word-length or solution-limit\n")
	io.WriteString(w, "show - show current settings\n")
	io.WriteString(w, "exit - leave the shell\n")
}

// shellState is what persists between commands: the config, the trie cache,
// and the last solve's box and discovered words.
type shellState struct {
	cfg       *config.Config
	tries     *cache.Cache
	lastBox   *box.Box
	lastWords *solver.WordIndex
}

func loadTrie(cfg *config.Config, key string) (*trie.Trie, error) {
	words, err := wordlist.Load(key, cfg.MinWordLength)
	if err != nil {
		return nil, err
	}
	return trie.FromWords(words), nil
}

func (st *shellState) newSolver(sides []string) (*solver.Solver, *box.Box, error) {
	b, err := box.New(sides)
	if err != nil {
		return nil, nil, err
	}
	t, err := st.tries.Get(st.cfg, st.cfg.DictionaryPath, loadTrie)
	if err != nil {
		return nil, nil, err
	}
	s := solver.New(t, b, solver.Options{
		MaxWords:      st.cfg.MaxWords,
		MinWordLength: st.cfg.MinWordLength,
		SolutionLimit: st.cfg.SolutionLimit,
	})
	return s, b, nil
}

func (st *shellState) solve(sides []string, bestFirst bool, w io.Writer) {
	s, b, err := st.newSolver(sides)
	if err != nil {
		showMessage("Error: "+err.Error(), w)
		return
	}
	var sols []solver.Solution
	if bestFirst {
		sols, err = s.SolveBestFirst(nil)
	} else {
		sols, err = s.Solve()
	}
	if err != nil {
		showMessage("Error: "+err.Error(), w)
		return
	}
	st.lastBox = b
	st.lastWords = s.FindWords()
	showSolutions(b, sols, w)
}

func showSolutions(b *box.Box, sols []solver.Solution, w io.Writer) {
	if len(sols) == 0 {
		showMessage("No solutions found.", w)
		return
	}
	showMessage(fmt.Sprintf("Found %d solution(s):", len(sols)), w)
	for i, sol := range sols {
		showMessage(fmt.Sprintf("%d. %s (%d words, %d letters)",
			i+1, sol, len(sol.Words), sol.Letters.Count()), w)
		missing := lo.Filter(b.Letters(), func(c byte, _ int) bool {
			return !sol.Letters.Has(c)
		})
		if len(missing) == 0 {
			showMessage("   complete: uses every letter in the box", w)
		} else {
			showMessage(fmt.Sprintf("   missing letters: %s", string(missing)), w)
		}
	}
}

func (st *shellState) listWords(arg string, ending bool, w io.Writer) {
	if st.lastWords == nil {
		showMessage("Please solve a box first with the `solve` command", w)
		return
	}
	if len(arg) != 1 {
		showMessage("Please give a single letter", w)
		return
	}
	var words []string
	if ending {
		words = st.lastWords.EndingWith(arg[0])
	} else {
		words = st.lastWords.StartingWith(arg[0])
	}
	if len(words) == 0 {
		showMessage("(no words)", w)
		return
	}
	showMessage(strings.Join(words, " "), w)
}

func (st *shellState) set(fields []string, w io.Writer) {
	if len(fields) != 2 {
		showMessage("set needs an option name and a value", w)
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n <= 0 {
		showMessage("value must be a positive integer", w)
		return
	}
	switch fields[0] {
	case "max-words":
		st.cfg.MaxWords = n
	case "min-word-length":
		st.cfg.MinWordLength = n
		// word-length filtering happens at load time, so the cached trie
		// no longer matches this setting.
		st.tries = cache.New()
	case "solution-limit":
		st.cfg.SolutionLimit = n
	default:
		showMessage("unknown option "+fields[0], w)
		return
	}
	st.show(w)
}

func (st *shellState) show(w io.Writer) {
	showMessage(fmt.Sprintf("dictionary-path: %s", st.cfg.DictionaryPath), w)
	showMessage(fmt.Sprintf("max-words: %d", st.cfg.MaxWords), w)
	showMessage(fmt.Sprintf("min-word-length: %d", st.cfg.MinWordLength), w)
	showMessage(fmt.Sprintf("solution-limit: %d", st.cfg.SolutionLimit), w)
}

func shellLoop(cfg *config.Config) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mletterbox>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	st := &shellState{cfg: cfg, tries: cache.New()}

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		switch {
		case line == "bye" || line == "exit":
			break readlineLoop
		case line == "help":
			usage(l.Stderr())
		case line == "show":
			st.show(l.Stderr())
		case len(fields) > 1 && fields[0] == "solve":
			st.solve(fields[1:], false, l.Stderr())
		case len(fields) > 1 && fields[0] == "bestfirst":
			st.solve(fields[1:], true, l.Stderr())
		case len(fields) == 2 && fields[0] == "words":
			st.listWords(fields[1], false, l.Stderr())
		case len(fields) == 2 && fields[0] == "ending":
			st.listWords(fields[1], true, l.Stderr())
		case len(fields) > 1 && fields[0] == "set":
			st.set(fields[1:], l.Stderr())
		case line == "":
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			showMessage("Unknown command; try `help`", l.Stderr())
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
