// Package similarity scores how topically close a job text and a candidate text are.
package similarity

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultTimeout = 5 * time.Second

type Strategy string

const (
	StrategyEmbedding Strategy = "embedding"
	StrategyLexical   Strategy = "lexical"
)

// Result is a similarity in [0,1] and the strategy that produced it.
type Result struct {
	Value    float64
	Strategy Strategy
}

// Provider never fails: strategies that depend on external services degrade
// to lexical similarity instead.
type Provider interface {
	Compare(ctx context.Context, a, b string) Result
}

// Embedder turns a text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Options struct {
	// Timeout bounds one comparison, both embedding calls included.
	Timeout time.Duration
	// RequestsPerSecond limits outbound embedding calls. Zero disables limiting.
	RequestsPerSecond float64
	// IDF weighting of the lexical strategy. Defaults to SmoothIDF.
	IDF    IDF
	Logger *zap.Logger
}

// New picks the strategy once: embeddings when an embedder is available,
// lexical similarity otherwise.
func New(embedder Embedder, opts Options) Provider {
	lexical := Lexical{IDF: opts.IDF}
	if embedder == nil {
		return lexical
	}

	e := &Embedding{
		embedder: embedder,
		fallback: lexical,
		timeout:  opts.Timeout,
		logger:   opts.Logger,
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 2 {
			burst = 2
		}
		e.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return e
}

// Lexical is the TF-IDF cosine strategy.
type Lexical struct {
	IDF IDF
}

func (l Lexical) Compare(_ context.Context, a, b string) Result {
	return Result{Value: TFIDFCosineWith(a, b, l.IDF), Strategy: StrategyLexical}
}
