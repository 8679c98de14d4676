package config

import "github.com/namsral/flag"

type Config struct {
	DictionaryPath string
	MaxWords       int
	MinWordLength  int
	SolutionLimit  int
	Debug          bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("letterbox", flag.ContinueOnError)
	fs.StringVar(&c.DictionaryPath, "dictionary-path", "/usr/share/dict/american-english", "dictionary file, one word per line")
	fs.IntVar(&c.MaxWords, "max-words", 5, "maximum number of words in a solution")
	fs.IntVar(&c.MinWordLength, "min-word-length", 3, "minimum length of each word in a solution")
	fs.IntVar(&c.SolutionLimit, "solution-limit", 10, "stop searching after this many solutions")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
