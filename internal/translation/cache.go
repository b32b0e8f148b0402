package translation

import (
	"context"
	"fmt"

	"codeberg.org/snonux/cipherpair/internal/store"
)

// Cache is the persistent translation cache of one language pair. Entries are
// only ever added; an entry means the word is never sent to a provider again.
type Cache struct {
	backend      store.Backend
	pair         store.Pair
	translations map[string]string
}

// LoadCache reads the saved translations of pair, or starts empty
func LoadCache(ctx context.Context, backend store.Backend, pair store.Pair) (*Cache, error) {
	translations, err := backend.LoadTranslations(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to load translation cache %s: %w", pair, err)
	}
	return &Cache{backend: backend, pair: pair, translations: translations}, nil
}

// Add adds a translation to the cache
func (c *Cache) Add(word, translation string) {
	c.translations[word] = translation
}

// Get retrieves a translation from the cache
func (c *Cache) Get(word string) (string, bool) {
	translation, ok := c.translations[word]
	return translation, ok
}

// Len returns the number of cached translations
func (c *Cache) Len() int {
	return len(c.translations)
}

// Save overwrites the persisted cache with the full current mapping
func (c *Cache) Save(ctx context.Context) error {
	if err := c.backend.SaveTranslations(ctx, c.pair, c.translations); err != nil {
		return fmt.Errorf("failed to save translation cache %s: %w", c.pair, err)
	}
	return nil
}
