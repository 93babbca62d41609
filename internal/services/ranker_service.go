package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/models/response_models"
	"itinera/pkg/llm"
	"itinera/pkg/utils"
)

type AttractionRankerInterface interface {
	RankAttractions(ctx context.Context, cities []string) (*response_models.CityAttractions, error)
}

type AttractionRanker struct {
	client llm.Client
	cfg    *config.Config
	logger *zap.Logger
}

func NewAttractionRanker(client llm.Client, cfg *config.Config, logger *zap.Logger) AttractionRankerInterface {
	return &AttractionRanker{
		client: client,
		cfg:    cfg,
		logger: logger.Named("ranker"),
	}
}

// RankAttractions asks the ranking model for attractions in every city with
// a single prompt. A failed call or an unusable answer fails the whole
// request; there is no partial result.
func (r *AttractionRanker) RankAttractions(ctx context.Context, cities []string) (*response_models.CityAttractions, error) {
	if len(cities) == 0 {
		return nil, utils.ValidationError(utils.ErrNoCities)
	}

	prompt := buildRankingPrompt(cities, r.cfg.AttractionsPerCity)
	raw, err := r.client.GenerateText(ctx, r.cfg.RankModel, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrRankingFailed, utils.UpstreamError(err))
	}

	ranked := response_models.NewCityAttractions()
	if err := utils.DecodeModelJSON(raw, ranked); err != nil {
		r.logger.Debug("Unparseable ranking response", zap.String("raw", raw))
		return nil, fmt.Errorf("%w: %w", utils.ErrRankingFailed, err)
	}
	if ranked.Len() == 0 {
		return nil, fmt.Errorf("%w: %w: no cities in response", utils.ErrRankingFailed, utils.ErrMalformedResponse)
	}

	r.logger.Info("Ranked attractions",
		zap.Strings("requested", cities),
		zap.Int("cities", ranked.Len()),
	)
	return ranked, nil
}
