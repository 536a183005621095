package knowledge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/domain"
)

const answerPromptTemplate = `Use the following pieces of context to answer the question at the end. If the answer is not contained in the context, say that you don't know.

Context:
%s

Question: %s`

// PipelineConfig configures index construction and retrieval.
type PipelineConfig struct {
	DocumentPath string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

// Pipeline answers questions against a reference document using retrieval
// augmented generation. The index is built once and read-only afterwards.
type Pipeline struct {
	embedder  Embedder
	store     VectorStore
	generator Generator
	topK      int
	logger    *zap.Logger
}

// NewPipeline loads the reference document, chunks it, embeds every chunk and
// indexes the vectors. Construction fails if the document is missing or any
// embedding call fails.
func NewPipeline(ctx context.Context, cfg PipelineConfig, embedder Embedder, store VectorStore, generator Generator, logger *zap.Logger) (*Pipeline, error) {
	content, err := LoadDocument(cfg.DocumentPath)
	if err != nil {
		return nil, err
	}

	chunks := NewChunker(cfg.ChunkSize, cfg.ChunkOverlap).Chunk(content)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("knowledge document %s is empty", cfg.DocumentPath)
	}

	vectors := make([][]float64, len(chunks))
	for i, ch := range chunks {
		vec, err := embedder.Embed(ctx, ch.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d: %w", ch.Index, err)
		}
		vectors[i] = vec
	}

	if err := store.Init(len(vectors[0])); err != nil {
		return nil, fmt.Errorf("failed to init vector store: %w", err)
	}
	if err := store.Upsert(chunks, vectors); err != nil {
		return nil, fmt.Errorf("failed to index chunks: %w", err)
	}

	topK := cfg.TopK
	if topK <= 0 {
		topK = 4
	}

	logger.Info("knowledge index built",
		zap.String("document", cfg.DocumentPath),
		zap.Int("chunks", len(chunks)))

	return &Pipeline{
		embedder:  embedder,
		store:     store,
		generator: generator,
		topK:      topK,
		logger:    logger,
	}, nil
}

// Answer embeds the question, retrieves the top-k nearest chunks and asks the
// generator for an answer grounded in them. All failures wrap
// domain.ErrRetrieval so callers can degrade without crashing.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	vec, err := p.embedder.Embed(ctx, question)
	if err != nil {
		p.logger.Error("failed to embed question", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	results, err := p.store.Search(vec, p.topK)
	if err != nil {
		p.logger.Error("vector search failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	var passages strings.Builder
	for i, r := range results {
		if i > 0 {
			passages.WriteString("\n\n")
		}
		passages.WriteString(r.Chunk.Text)
	}

	prompt := fmt.Sprintf(answerPromptTemplate, passages.String(), question)
	answer, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		p.logger.Error("generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	return answer, nil
}
