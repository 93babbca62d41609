package llm_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/pkg/llm"
)

var Module = fx.Provide(ProvideModelClient)

// ProvideModelClient creates the model client for the configured provider
// and closes it when the app stops.
func ProvideModelClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Initialized model client",
		zap.String("provider", cfg.ModelProvider),
		zap.String("rank_model", cfg.RankModel),
		zap.String("enrich_model", cfg.EnrichModel),
		zap.Int("max_in_flight", cfg.ModelMaxConcurrency),
		zap.Duration("timeout", cfg.ModelTimeout),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if closer, ok := client.(io.Closer); ok {
				return closer.Close()
			}
			return nil
		},
	})
	return client, nil
}
