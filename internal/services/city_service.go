package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"itinera/internal/config"
	"itinera/pkg/llm"
	"itinera/pkg/utils"
)

type CityServiceInterface interface {
	SuggestCities(ctx context.Context, country string) ([]string, error)
	ValidateCity(ctx context.Context, country, city string) (bool, error)
}

type CityService struct {
	client llm.Client
	cfg    *config.Config
	logger *zap.Logger
}

func NewCityService(client llm.Client, cfg *config.Config, logger *zap.Logger) CityServiceInterface {
	return &CityService{
		client: client,
		cfg:    cfg,
		logger: logger.Named("cities"),
	}
}

// SuggestCities returns popular cities of country as listed by the model,
// duplicates removed and first occurrences kept.
func (s *CityService) SuggestCities(ctx context.Context, country string) ([]string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return []string{}, utils.ValidationError(utils.ErrMissingCountry)
	}

	raw, err := s.client.GenerateText(ctx, s.cfg.RankModel, buildSuggestCitiesPrompt(country, s.cfg.SuggestedCityCount))
	if err != nil {
		return []string{}, utils.UpstreamError(err)
	}

	cities := parseCityList(utils.SanitizeModelOutput(raw))
	s.logger.Info("Suggested cities", zap.String("country", country), zap.Strings("cities", cities))
	return cities, nil
}

// ValidateCity reports whether the model's answer contains "YES" in any
// case. Every other answer, including an empty one, is false.
func (s *CityService) ValidateCity(ctx context.Context, country, city string) (bool, error) {
	country = strings.TrimSpace(country)
	city = strings.TrimSpace(city)
	if country == "" {
		return false, utils.ValidationError(utils.ErrMissingCountry)
	}
	if city == "" {
		return false, utils.ValidationError(utils.ErrMissingCity)
	}

	raw, err := s.client.GenerateText(ctx, s.cfg.RankModel, buildValidateCityPrompt(country, city))
	if err != nil {
		return false, utils.UpstreamError(err)
	}

	return IsAffirmative(raw), nil
}

// IsAffirmative is true when answer contains "YES", ignoring case.
func IsAffirmative(answer string) bool {
	return strings.Contains(strings.ToUpper(answer), "YES")
}

func parseCityList(text string) []string {
	cities := []string{}
	seen := make(map[string]bool)
	for _, part := range strings.Split(text, ",") {
		city := strings.TrimSpace(part)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	return cities
}
