// Package knowledge builds a semantic index over a reference document and
// answers free-form questions against it.
package knowledge

import "context"

// Chunk is a bounded-length slice of the reference document used as the unit
// of retrieval.
type Chunk struct {
	ID    string
	Text  string
	Index int
}

// SearchResult is a matching chunk with a similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Embedder converts free text into a numeric vector representation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorStore indexes vectors and supports nearest-neighbor search.
type VectorStore interface {
	Init(dimension int) error
	Upsert(chunks []Chunk, vectors [][]float64) error
	Search(vector []float64, topK int) ([]SearchResult, error)
}

// Generator produces a textual answer for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
