package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// Sink is the raster collaborator: it accepts a normalized image and
// returns an opaque asset handle usable as a layer's image reference.
// A handle stays valid for the lifetime of the session that stored it.
type Sink interface {
	Store(id string, img image.Image) (string, error)
}

// DefaultCacheBytes bounds the in-memory sink's total encoded size.
const DefaultCacheBytes = 100 * 1024 * 1024

type memoryEntry struct {
	data   []byte
	width  int
	height int
}

// MemorySink is an in-memory Sink that PNG-encodes stored images and
// evicts least-recently-used entries once the byte budget is exceeded.
// It is not safe for concurrent use; each session owns its own sink.
type MemorySink struct {
	entries  map[string]memoryEntry
	order    []string // access order, oldest first
	total    int
	maxBytes int
}

// NewMemorySink creates a sink with the default byte budget.
func NewMemorySink() *MemorySink {
	return NewMemorySinkWithLimit(DefaultCacheBytes)
}

// NewMemorySinkWithLimit creates a sink with a custom byte budget.
func NewMemorySinkWithLimit(maxBytes int) *MemorySink {
	return &MemorySink{
		entries:  make(map[string]memoryEntry),
		maxBytes: maxBytes,
	}
}

// Store PNG-encodes the image under the given id and returns the id as
// the asset handle. Re-storing an id replaces the previous entry. An
// image whose encoding alone exceeds the byte budget is rejected without
// disturbing existing entries; the cache never holds more than maxBytes.
func (s *MemorySink) Store(id string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image %q: %w", id, err)
	}
	if buf.Len() > s.maxBytes {
		return "", fmt.Errorf("image %q: encoded size %d exceeds cache budget %d", id, buf.Len(), s.maxBytes)
	}

	if old, ok := s.entries[id]; ok {
		s.total -= len(old.data)
		s.removeFromOrder(id)
	}

	data := buf.Bytes()
	for s.total+len(data) > s.maxBytes && len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		s.total -= len(s.entries[oldest].data)
		delete(s.entries, oldest)
	}

	bounds := img.Bounds()
	s.entries[id] = memoryEntry{data: data, width: bounds.Dx(), height: bounds.Dy()}
	s.order = append(s.order, id)
	s.total += len(data)
	return id, nil
}

// Get returns the PNG bytes stored under an asset handle.
func (s *MemorySink) Get(id string) ([]byte, bool) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	s.removeFromOrder(id)
	s.order = append(s.order, id)
	return entry.data, true
}

// Info returns the pixel dimensions of a stored asset.
func (s *MemorySink) Info(id string) (width, height int, ok bool) {
	entry, found := s.entries[id]
	if !found {
		return 0, 0, false
	}
	return entry.width, entry.height, true
}

// Count returns the number of stored assets.
func (s *MemorySink) Count() int {
	return len(s.entries)
}

// Size returns the total encoded bytes held.
func (s *MemorySink) Size() int {
	return s.total
}

// Clear drops all stored assets. Called when a document is closed or a
// new import begins.
func (s *MemorySink) Clear() {
	s.entries = make(map[string]memoryEntry)
	s.order = nil
	s.total = 0
}

func (s *MemorySink) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
