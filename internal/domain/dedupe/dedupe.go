// Package dedupe enforces exactly-once event application.
package dedupe

import (
	"context"
	"sort"
	"sync"
)

// Deduper records applied event ids. The rating fold has no undo, so a
// replayed event id must be rejected rather than applied twice.
type Deduper interface {
	// SeenAndRecord atomically checks whether id was seen and records it if
	// not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Size returns the number of recorded ids.
	Size() int

	// IDs returns every recorded id in sorted order, for checkpointing.
	IDs() []string
}

// inMemoryDeduper implements Deduper over a plain set. The fold works a
// finite batch, so no eviction is needed.
type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates an empty deduper.
func NewInMemoryDeduper() Deduper {
	return &inMemoryDeduper{seen: make(map[string]struct{})}
}

func (d *inMemoryDeduper) SeenAndRecord(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *inMemoryDeduper) IDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, 0, len(d.seen))
	for id := range d.seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
