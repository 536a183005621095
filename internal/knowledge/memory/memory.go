// Package memory is an in-memory vector store using brute-force cosine
// similarity. The index is immutable after construction and safe for
// concurrent reads.
package memory

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/grievance-labs/complaintbot/internal/knowledge"
)

// Store holds chunk vectors and supports top-k cosine search.
type Store struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	chunks    []knowledge.Chunk
}

// New creates an empty store.
func New() *Store { return &Store{} }

// Init sets the vector dimension and clears any previous contents.
func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.chunks = nil
	return nil
}

// Upsert adds chunks with their vectors.
func (s *Store) Upsert(chunks []knowledge.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns the topK nearest chunks by cosine similarity.
func (s *Store) Search(vector []float64, topK int) ([]knowledge.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 4
	}

	results := make([]knowledge.SearchResult, 0, len(s.vectors))
	for i := range s.vectors {
		results = append(results, knowledge.SearchResult{
			Chunk: s.chunks[i],
			Score: cosine(s.vectors[i], vector),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
