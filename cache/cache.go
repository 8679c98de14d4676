package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/config"
	"github.com/domino14/letterbox/trie"
)

// The cache keeps dictionary tries that are expensive to build, so repeated
// solves over the same word list only build the trie once. It is an explicit
// instance owned by whoever runs solves, not a package-level singleton; the
// tries inside it are read-only once built.

type LoadFunc func(cfg *config.Config, key string) (*trie.Trie, error)

type Cache struct {
	sync.Mutex
	tries map[string]*trie.Trie
}

func New() *Cache {
	return &Cache{tries: make(map[string]*trie.Trie)}
}

func (c *Cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	t, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.tries[key] = t
	return nil
}

// Get returns the trie for key, building it with loadFunc on a miss.
func (c *Cache) Get(cfg *config.Config, key string, loadFunc LoadFunc) (*trie.Trie, error) {
	c.Lock()
	defer c.Unlock()
	if t, ok := c.tries[key]; ok {
		log.Debug().Str("key", key).Msg("getting trie from cache")
		return t, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.tries[key], nil
}
