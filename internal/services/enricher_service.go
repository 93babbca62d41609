package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/internal/models/response_models"
	"itinera/pkg/llm"
	"itinera/pkg/utils"
)

type DayEnricherInterface interface {
	EnrichDay(ctx context.Context, day response_models.DayPlan) (response_models.DayPlan, error)
}

type DayEnricher struct {
	client llm.Client
	cfg    *config.Config
	logger *zap.Logger
}

func NewDayEnricher(client llm.Client, cfg *config.Config, logger *zap.Logger) DayEnricherInterface {
	return &DayEnricher{
		client: client,
		cfg:    cfg,
		logger: logger.Named("enricher"),
	}
}

type enrichmentRecord struct {
	Name           string  `json:"name"`
	TravelTip      *string `json:"travelTip"`
	FoodSuggestion *string `json:"foodSuggestion"`
}

type enrichmentPayload struct {
	Attractions *[]enrichmentRecord `json:"Attractions"`
}

// EnrichDay attaches a travel tip and food suggestion to each attraction of
// day. The returned day always has the same attractions in the same order.
// A non-nil error wraps ErrEnrichmentFailed and means every tip and
// suggestion on the day is nil; callers are expected to carry on.
func (e *DayEnricher) EnrichDay(ctx context.Context, day response_models.DayPlan) (response_models.DayPlan, error) {
	enriched := response_models.DayPlan{
		Label:       day.Label,
		Attractions: make([]response_models.Attraction, len(day.Attractions)),
	}
	for i, a := range day.Attractions {
		a.TravelTip = nil
		a.FoodSuggestion = nil
		enriched.Attractions[i] = a
	}
	if len(enriched.Attractions) == 0 {
		return enriched, nil
	}

	raw, err := e.client.GenerateText(ctx, e.cfg.EnrichModel, buildEnrichmentPrompt(enriched))
	if err != nil {
		enriched.EnrichmentErr = fmt.Errorf("%w for %s: %w", utils.ErrEnrichmentFailed, day.Label, utils.UpstreamError(err))
		return enriched, enriched.EnrichmentErr
	}

	var payload enrichmentPayload
	if err := utils.DecodeModelJSON(raw, &payload); err != nil {
		enriched.EnrichmentErr = fmt.Errorf("%w for %s: %w", utils.ErrEnrichmentFailed, day.Label, err)
		return enriched, enriched.EnrichmentErr
	}
	if payload.Attractions == nil {
		enriched.EnrichmentErr = fmt.Errorf("%w for %s: %w: missing Attractions", utils.ErrEnrichmentFailed, day.Label, utils.ErrMalformedResponse)
		return enriched, enriched.EnrichmentErr
	}

	records := *payload.Attractions
	matched := 0
	for i := range enriched.Attractions {
		if record, ok := findRecord(records, enriched.Attractions[i].Name); ok {
			enriched.Attractions[i].TravelTip = record.TravelTip
			enriched.Attractions[i].FoodSuggestion = record.FoodSuggestion
			matched++
		}
	}

	e.logger.Debug("Enriched day",
		zap.String("day", day.Label),
		zap.Int("attractions", len(enriched.Attractions)),
		zap.Int("matched", matched),
	)
	return enriched, nil
}

// findRecord returns the first record whose name equals name, ignoring case.
func findRecord(records []enrichmentRecord, name string) (enrichmentRecord, bool) {
	for _, r := range records {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return enrichmentRecord{}, false
}
