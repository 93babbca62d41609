package services

import (
	"slices"

	"github.com/google/uuid"

	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

// FlattenAttractions merges the per-city lists into one sequence, cities in
// ranking order and attractions in list order. Each attraction is tagged with
// its city and a fresh id.
func FlattenAttractions(ranked *response_models.CityAttractions) []response_models.Attraction {
	if ranked == nil {
		return nil
	}

	var all []response_models.Attraction
	for pair := ranked.Oldest(); pair != nil; pair = pair.Next() {
		for _, candidate := range pair.Value {
			all = append(all, response_models.Attraction{
				ID:                  uuid.NewString(),
				AttractionCandidate: candidate,
				City:                pair.Key,
			})
		}
	}
	return all
}

// SortByImportance orders attractions by descending importance score. Ties
// keep their input order.
func SortByImportance(attractions []response_models.Attraction) {
	slices.SortStableFunc(attractions, func(a, b response_models.Attraction) int {
		switch {
		case a.ImportanceScore > b.ImportanceScore:
			return -1
		case a.ImportanceScore < b.ImportanceScore:
			return 1
		default:
			return 0
		}
	})
}

// PackDays assigns each attraction, in the given order, to the first day
// whose booked time plus the attraction's visit time stays within capacity.
// Attractions that fit on no day are dropped.
//
// First-fit never opens more days than there are attractions, so only
// min(days, len(sorted)) plans are materialized. Days past that could
// never hold anything and are the same as empty days to callers.
func PackDays(sorted []response_models.Attraction, days int, capacity float64) ([]response_models.DayPlan, error) {
	if days <= 0 {
		return nil, utils.ValidationError(utils.ErrInvalidDays)
	}

	bins := min(days, len(sorted))
	plans := make([]response_models.DayPlan, bins)
	used := make([]float64, bins)
	for i := range plans {
		plans[i].Label = response_models.DayLabel(i)
	}

	for _, attraction := range sorted {
		hours := attraction.AverageVisitTimeHours
		for i := range bins {
			if used[i]+hours <= capacity {
				plans[i].Attractions = append(plans[i].Attractions, attraction)
				used[i] += hours
				break
			}
		}
	}

	return plans, nil
}
