// Package batch accumulates freshly translated word pairs until they are
// flushed to storage and evaluated together.
package batch

// Pair is a source word with its translation
type Pair struct {
	Source     string
	Translated string
}

// Batch is a bounded, ordered group of pairs
type Batch struct {
	size  int
	pairs []Pair
}

// New creates a batch that is full once it holds size pairs
func New(size int) *Batch {
	if size < 1 {
		size = 1
	}
	return &Batch{size: size, pairs: make([]Pair, 0, size)}
}

// Add appends a pair to the batch
func (b *Batch) Add(source, translated string) {
	b.pairs = append(b.pairs, Pair{Source: source, Translated: translated})
}

// Len returns the number of pairs in the batch
func (b *Batch) Len() int {
	return len(b.pairs)
}

// Full reports whether the batch reached its size
func (b *Batch) Full() bool {
	return len(b.pairs) >= b.size
}

// Pairs returns a copy of the accumulated pairs in insertion order
func (b *Batch) Pairs() []Pair {
	out := make([]Pair, len(b.pairs))
	copy(out, b.pairs)
	return out
}

// Reset empties the batch
func (b *Batch) Reset() {
	b.pairs = b.pairs[:0]
}

// Single wraps one pair as a batch of its own
func Single(source, translated string) []Pair {
	return []Pair{{Source: source, Translated: translated}}
}
