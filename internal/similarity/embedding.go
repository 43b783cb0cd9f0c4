package similarity

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Embedding compares texts by the cosine of their embeddings. A failed
// attempt is not retried; the comparison falls back to the lexical strategy.
type Embedding struct {
	embedder Embedder
	fallback Provider
	timeout  time.Duration
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func (e *Embedding) Compare(ctx context.Context, a, b string) Result {
	value, err := e.similarity(ctx, a, b)
	if err != nil {
		e.logger.Warn("embedding similarity unavailable, using lexical fallback", zap.Error(err))
		return e.fallback.Compare(ctx, a, b)
	}
	return Result{Value: value, Strategy: StrategyEmbedding}
}

func (e *Embedding) similarity(ctx context.Context, a, b string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var vecA, vecB []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := e.embed(gctx, a)
		vecA = v
		return err
	})
	g.Go(func() error {
		v, err := e.embed(gctx, b)
		vecB = v
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return Cosine(vecA, vecB)
}

func (e *Embedding) embed(ctx context.Context, text string) ([]float32, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	return vec, nil
}
