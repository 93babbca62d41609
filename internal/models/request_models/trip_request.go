package request_models

import (
	"strconv"
	"strings"

	"itinera/pkg/utils"
)

// ItineraryQuery holds the raw GET /api/itinerary parameters. Days stays a
// string so a non-numeric value can be reported in-band.
type ItineraryQuery struct {
	Cities string
	Days   string
}

// TripRequest is immutable for the lifetime of one itinerary request.
type TripRequest struct {
	Cities []string
	Days   int
}

// ParseCities splits a comma separated list, trimming entries and dropping
// empty ones. Duplicates are kept.
func ParseCities(raw string) []string {
	cities := []string{}
	for _, part := range strings.Split(raw, ",") {
		if city := strings.TrimSpace(part); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}

// ParseDays converts the days query value. Anything that is not a positive
// integer is a validation error.
func ParseDays(raw string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, utils.ValidationError(utils.ErrInvalidDays)
	}
	if days <= 0 {
		return days, utils.ValidationError(utils.ErrInvalidDays)
	}
	return days, nil
}

func (q ItineraryQuery) ToTripRequest() (TripRequest, error) {
	req := TripRequest{Cities: ParseCities(q.Cities)}
	days, err := ParseDays(q.Days)
	req.Days = days
	if err != nil {
		return req, err
	}
	return req, req.Validate()
}

func (r TripRequest) Validate() error {
	if len(r.Cities) == 0 {
		return utils.ValidationError(utils.ErrNoCities)
	}
	if r.Days <= 0 {
		return utils.ValidationError(utils.ErrInvalidDays)
	}
	return nil
}
