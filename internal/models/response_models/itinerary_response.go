package response_models

type ItineraryResponse struct {
	Cities      []string        `json:"cities"`
	Days        int             `json:"days"`
	Itineraries ItineraryGroups `json:"itineraries"`
	Error       string          `json:"error,omitempty"`
}

type ItineraryGroups struct {
	Combined *DayGroups `json:"Combined"`
}

type SuggestCitiesResponse struct {
	Country         string   `json:"country"`
	SuggestedCities []string `json:"suggested_cities"`
	Error           string   `json:"error,omitempty"`
}

type ValidateCityResponse struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}
