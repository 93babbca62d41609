package response_models

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AttractionCandidate is one ranked attraction as produced by the model.
// Fields are taken as-is; the expected ranges are not enforced.
type AttractionCandidate struct {
	Name                  string  `json:"name"`
	Description           string  `json:"description"`
	ImportanceScore       float64 `json:"importance_score"`
	AverageVisitTimeHours float64 `json:"average_visit_time_hours"`
	BestTimeOfDay         string  `json:"best_time_of_day"`
}

// CityAttractions maps a city to its ranked candidates, in the order the
// model listed the cities.
type CityAttractions = orderedmap.OrderedMap[string, []AttractionCandidate]

func NewCityAttractions() *CityAttractions {
	return orderedmap.New[string, []AttractionCandidate]()
}

// Attraction is a candidate tagged with its city once the per-city lists are
// merged. TravelTip and FoodSuggestion stay nil until enrichment finds a
// matching record.
type Attraction struct {
	ID string `json:"id"`
	AttractionCandidate
	City           string  `json:"city"`
	TravelTip      *string `json:"travelTip"`
	FoodSuggestion *string `json:"foodSuggestion"`
}

type DayPlan struct {
	Label       string       `json:"day"`
	Attractions []Attraction `json:"attractions"`

	// EnrichmentErr records a soft enrichment failure for this day.
	EnrichmentErr error `json:"-"`
}

func DayLabel(index int) string {
	return fmt.Sprintf("Day %d", index+1)
}

// TotalHours is the visit time booked on the day.
func (d DayPlan) TotalHours() float64 {
	var total float64
	for _, a := range d.Attractions {
		total += a.AverageVisitTimeHours
	}
	return total
}

type Itinerary struct {
	Cities []string
	Days   []DayPlan
}

// DayGroups is the "Day N" → attractions object returned to clients.
type DayGroups = orderedmap.OrderedMap[string, []Attraction]

func NewDayGroups() *DayGroups {
	return orderedmap.New[string, []Attraction]()
}

// Combined returns the non-empty days keyed by label, in day order.
func (i *Itinerary) Combined() *DayGroups {
	groups := NewDayGroups()
	if i == nil {
		return groups
	}
	for _, day := range i.Days {
		if len(day.Attractions) == 0 {
			continue
		}
		groups.Set(day.Label, day.Attractions)
	}
	return groups
}
