package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/job-matcher/internal/logger"
	"github.com/spigell/job-matcher/internal/utils"
)

const (
	Provider     = "gemini"
	defaultModel = "text-embedding-004"
	taskType     = "SEMANTIC_SIMILARITY"
	logPreview   = 80
)

type embedModels interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder wraps the Google GenAI client to turn texts into embedding vectors.
type Embedder struct {
	models    embedModels
	modelName string
	logger    *zap.Logger
}

// NewEmbedder creates an Embedder configured for the Gemini API backend.
func NewEmbedder(ctx context.Context, apiKey, model string, log *zap.Logger) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newEmbedder(client.Models, model, log), nil
}

func newEmbedder(models embedModels, model string, log *zap.Logger) *Embedder {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Embedder{
		models:    models,
		modelName: model,
		logger:    logger.WithCommonFields(log, Provider, model),
	}
}

// Embed returns the embedding of text. Empty text is rejected without a call.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e == nil || e.models == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	e.logger.Debug("requesting embedding", zap.String("text", utils.TruncateForLog(text, logPreview)))

	resp, err := e.models.EmbedContent(ctx, e.modelName, genai.Text(text), &genai.EmbedContentConfig{TaskType: taskType})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned empty embedding")
	}

	return resp.Embeddings[0].Values, nil
}

func (e *Embedder) Model() string {
	if e == nil {
		return ""
	}
	return e.modelName
}
