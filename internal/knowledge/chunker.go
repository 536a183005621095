package knowledge

import "strconv"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
// Overlap keeps answers that span a chunk boundary retrievable from at
// least one chunk.
const DefaultChunkOverlap = 100

// Chunker splits text into fixed-size chunks with overlap.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker creates a chunker. Out-of-range arguments fall back to defaults.
func NewChunker(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultChunkOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// Chunk splits content into chunks of chunkSize characters, each starting
// chunkSize-overlap after the previous one.
func (c *Chunker) Chunk(content string) []Chunk {
	if content == "" {
		return nil
	}

	runes := []rune(content)
	step := c.chunkSize - c.overlap

	var chunks []Chunk
	idx := 0
	for start := 0; start < len(runes); start += step {
		end := start + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			ID:    "chunk:" + strconv.Itoa(idx),
			Text:  string(runes[start:end]),
			Index: idx,
		})
		idx++
		if end == len(runes) {
			break
		}
	}
	return chunks
}
