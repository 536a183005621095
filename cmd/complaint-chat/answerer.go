package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/chat"
	"github.com/grievance-labs/complaintbot/internal/config"
	"github.com/grievance-labs/complaintbot/internal/knowledge"
	"github.com/grievance-labs/complaintbot/internal/knowledge/memory"
	"github.com/grievance-labs/complaintbot/internal/knowledge/provider"
)

// buildAnswerer constructs the knowledge pipeline. A missing API key or
// knowledge document degrades the assistant instead of aborting: complaint
// operations keep working, questions get a fallback message.
func buildAnswerer(cfg *config.Config, logger *zap.Logger) chat.Answerer {
	llm, err := provider.New(provider.Config{
		BaseURL:        cfg.LLM.BaseURL,
		APIKey:         cfg.LLM.APIKey,
		EmbeddingModel: cfg.LLM.EmbeddingModel,
		ChatModel:      cfg.LLM.ChatModel,
		Timeout:        time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
	})
	if err != nil {
		logger.Warn("Knowledge pipeline disabled", zap.Error(err))
		return nil
	}

	pipeline, err := knowledge.NewPipeline(context.Background(), knowledge.PipelineConfig{
		DocumentPath: cfg.Knowledge.DocumentPath,
		ChunkSize:    cfg.Knowledge.ChunkSize,
		ChunkOverlap: cfg.Knowledge.ChunkOverlap,
		TopK:         cfg.Knowledge.TopK,
	}, llm, memory.New(), llm, logger)
	if err != nil {
		logger.Warn("Knowledge pipeline disabled", zap.Error(err))
		return nil
	}
	return pipeline
}
