package services

import (
	"fmt"
	"strings"

	"itinera/internal/models/response_models"
)

func buildSuggestCitiesPrompt(country string, count int) string {
	return fmt.Sprintf(`You are a travel assistant. List exactly %d popular tourist cities in %s.
Rules:
- Return only the city names, separated by commas.
- No explanations, numbering, or extra words.
- Do not include reasoning or tags such as <think>.
Example: Tokyo, Kyoto, Osaka, Sapporo, Hiroshima`, count, country)
}

func buildValidateCityPrompt(country, city string) string {
	return fmt.Sprintf(`You are a travel assistant. Answer only "YES" or "NO". Is %q a real city in %q?`, city, country)
}

func buildRankingPrompt(cities []string, perCity int) string {
	var prompt strings.Builder

	prompt.WriteString("You are a professional travel planner.\n")
	fmt.Fprintf(&prompt, "For each of these cities: %s,\n", strings.Join(cities, ", "))
	fmt.Fprintf(&prompt, "list %d must-visit attractions with fields:\n", perCity)
	prompt.WriteString(`- name
- description (brief)
- importance_score (1-10)
- average_visit_time_hours (e.g., 1.5)
- best_time_of_day (Morning/Afternoon/Evening)

Return JSON only, keyed by city name:
{
  "CityName": [
    {
      "name": "...",
      "description": "...",
      "importance_score": 9.5,
      "average_visit_time_hours": 2.0,
      "best_time_of_day": "Morning"
    }
  ]
}`)

	return prompt.String()
}

func buildEnrichmentPrompt(day response_models.DayPlan) string {
	var prompt strings.Builder

	prompt.WriteString(`You are a travel itinerary planner.
For each attraction below, generate:
- A short travel tip (1 sentence)
- A nearby food suggestion (1 local dish or restaurant)

Attractions:
`)
	prompt.WriteString(renderAttractionList(day.Attractions))
	prompt.WriteString(`
Return JSON only, using the attraction names exactly as listed:
{
  "Attractions": [
    {
      "name": "...",
      "travelTip": "...",
      "foodSuggestion": "..."
    }
  ]
}`)

	return prompt.String()
}

func renderAttractionList(attractions []response_models.Attraction) string {
	var sb strings.Builder
	for _, a := range attractions {
		fmt.Fprintf(&sb, "- %s (%s): %s (%s)\n", a.Name, a.City, a.Description, a.BestTimeOfDay)
	}
	return sb.String()
}
