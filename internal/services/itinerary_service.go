package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"itinera/internal/config"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	ranker   AttractionRankerInterface
	enricher DayEnricherInterface
	cfg      *config.Config
	logger   *zap.Logger
}

func NewItineraryService(
	ranker AttractionRankerInterface,
	enricher DayEnricherInterface,
	cfg *config.Config,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		ranker:   ranker,
		enricher: enricher,
		cfg:      cfg,
		logger:   logger.Named("itinerary"),
	}
}

// GenerateItinerary validates req, ranks attractions for every city, packs
// them into req.Days days and enriches each non-empty day. Validation and
// ranking errors abort the request. Enrichment errors are recorded on the
// affected day only.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	s.logger.Info("Generating itinerary",
		zap.Strings("cities", req.Cities),
		zap.Int("days", req.Days),
	)

	ranked, err := s.ranker.RankAttractions(ctx, req.Cities)
	if err != nil {
		return nil, err
	}

	attractions := FlattenAttractions(ranked)
	SortByImportance(attractions)

	days, err := PackDays(attractions, req.Days, s.cfg.DayCapacityHours)
	if err != nil {
		return nil, err
	}

	placed := 0
	for _, day := range days {
		placed += len(day.Attractions)
	}
	s.logger.Info("Packed attractions",
		zap.Int("candidates", len(attractions)),
		zap.Int("placed", placed),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	s.enrichDays(ctx, days)

	return &response_models.Itinerary{Cities: req.Cities, Days: days}, nil
}

// enrichDays replaces each non-empty day with its enriched version. Days are
// written to their own slot so the result does not depend on scheduling.
func (s *ItineraryService) enrichDays(ctx context.Context, days []response_models.DayPlan) {
	var eg errgroup.Group
	eg.SetLimit(s.cfg.EnrichConcurrency)

	for i := range days {
		if len(days[i].Attractions) == 0 {
			continue
		}
		eg.Go(func() error {
			enriched, err := s.enricher.EnrichDay(ctx, days[i])
			if err != nil {
				s.logger.Warn("Enrichment failed, continuing without tips",
					zap.String("day", days[i].Label),
					zap.Error(err),
				)
			}
			days[i] = enriched
			return nil
		})
	}

	_ = eg.Wait()
}
