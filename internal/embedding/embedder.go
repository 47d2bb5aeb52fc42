package embedding

import (
	"context"
	"errors"
	"math"
	"sync"

	"skill-bridge/internal/domain/normalize"
)

// Embedder converts a text string into a fixed-length semantic vector.
// Implementations must be deterministic for a fixed model and safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

var ErrEmptyText = errors.New("text must not be empty")

// Cosine returns the cosine similarity of a and b in [-1, 1]. Mismatched or
// zero-length vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Similarity is cosine similarity clamped to [0, 1] for matching purposes.
func Similarity(ctx context.Context, e Embedder, a, b string) (float64, error) {
	va, err := e.Embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := e.Embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Clamp01(Cosine(va, vb)), nil
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Cache memoizes an Embedder by normalized text. Entries are append-only:
// a key is never recomputed within the process lifetime. Safe for
// concurrent use.
type Cache struct {
	inner Embedder

	mu      sync.RWMutex
	entries map[string][]float32
}

func NewCache(inner Embedder) *Cache {
	return &Cache{inner: inner, entries: make(map[string][]float32)}
}

func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := normalize.Normalize(text)
	if key == "" {
		return nil, ErrEmptyText
	}

	c.mu.RLock()
	vec, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := c.inner.Embed(ctx, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, ok := c.entries[key]; ok {
		vec = existing
	} else {
		c.entries[key] = vec
	}
	c.mu.Unlock()

	return vec, nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
