package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"itinera/internal/config"
)

//go:generate go tool mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client is a text-generation backend. Implementations must be safe for
// concurrent use.
type Client interface {
	GenerateText(ctx context.Context, modelID, prompt string) (string, error)
}

var ErrEmptyCompletion = errors.New("model returned no content")

// NewClient builds the provider selected in cfg, wrapped so that at most
// cfg.ModelMaxConcurrency calls are in flight and each call is bounded by
// cfg.ModelTimeout.
func NewClient(cfg *config.Config) (Client, error) {
	var inner Client

	switch strings.ToLower(cfg.ModelProvider) {
	case config.ProviderOllama:
		inner = NewOpenAICompatibleClient("ollama", cfg.OllamaBaseURL)
	case config.ProviderOpenAI:
		inner = NewOpenAICompatibleClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	case config.ProviderGemini:
		client, err := NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		inner = client
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.ModelProvider)
	}

	return NewBoundedClient(inner, int64(cfg.ModelMaxConcurrency), cfg.ModelTimeout), nil
}

// BoundedClient limits concurrent calls to an inner Client and applies a
// per-call timeout.
type BoundedClient struct {
	inner   Client
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewBoundedClient(inner Client, maxInFlight int64, timeout time.Duration) *BoundedClient {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &BoundedClient{
		inner:   inner,
		sem:     semaphore.NewWeighted(maxInFlight),
		timeout: timeout,
	}
}

func (b *BoundedClient) GenerateText(ctx context.Context, modelID, prompt string) (string, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer b.sem.Release(1)

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	return b.inner.GenerateText(ctx, modelID, prompt)
}

// Close releases the inner client if it holds resources.
func (b *BoundedClient) Close() error {
	if closer, ok := b.inner.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
