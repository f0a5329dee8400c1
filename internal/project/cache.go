package project

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"minifykit/internal/language"
)

// DefaultCacheSize is the number of minified results kept per run.
const DefaultCacheSize = 256

// cachedMinifier remembers the output for content it has already seen, so
// identical files in one tree are minified once.
type cachedMinifier struct {
	language.Minifier
	cache *lru.Cache[string, string]
}

func (c *cachedMinifier) Minify(code string) string {
	sum := sha256.Sum256([]byte(code))
	key := c.Name() + ":" + hex.EncodeToString(sum[:])

	if out, ok := c.cache.Get(key); ok {
		return out
	}
	out := c.Minifier.Minify(code)
	c.cache.Add(key, out)
	return out
}
