package services

import (
	"encoding/json"
	"fmt"
	"log"

	"weekendtraveller/store"
)

// Day-count bounds for a generated plan. The hard cap keeps LLM cost and
// latency bounded.
const (
	minItineraryDays     = 1
	maxItineraryDays     = 5
	defaultItineraryDays = 2
)

// ItineraryDay is one day of a trip plan.
type ItineraryDay struct {
	DayLabel  string   `json:"day_label"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
}

// Itinerary is a full multi-day plan. Built fresh per request, never stored.
type Itinerary struct {
	Header      string         `json:"header"`
	Days        []ItineraryDay `json:"days"`
	Footer      string         `json:"footer"`
	PackingList []string       `json:"packing_list,omitempty"`
	Waypoints   []string       `json:"waypoints"`
}

// ItineraryGenerator produces trip plans: one LLM attempt when a client is
// configured, otherwise (or on any failure) a deterministic template.
type ItineraryGenerator struct {
	ai ChatCompleter
}

// NewItineraryGenerator builds a generator. ai may be nil; every plan is
// then the templated default.
func NewItineraryGenerator(ai ChatCompleter) *ItineraryGenerator {
	return &ItineraryGenerator{ai: ai}
}

// Generate returns a plan for the destination with exactly
// clamp(parsedDays, 1, 5) day entries, regardless of LLM availability.
// durationHint is free text ("3", "2 Nights / 3 Days", ...); queryContext
// is the user's original search text.
func (g *ItineraryGenerator) Generate(dest store.Destination, queryContext, durationHint string) Itinerary {
	days := parseDays(durationHint)

	// The guaranteed-available fallback is built first.
	fallback := g.defaultItinerary(dest, days)
	if g.ai == nil {
		return fallback
	}

	system := "You are an expert travel concierge for trips within India. You respond with strict JSON only."
	user := fmt.Sprintf(`Plan a %d-day trip to %s, %s (%s trip). Traveller context: %q.

Return ONLY a JSON object with this exact shape, for exactly %d days:
{
  "header": "one-line trip headline",
  "days": [
    {
      "day_label": "Day 1",
      "title": "theme of the day",
      "subtitle": "one sentence",
      "morning": ["activity with a named place, timing and approximate cost"],
      "afternoon": ["..."],
      "evening": ["..."]
    }
  ],
  "footer": "one-line closing tip",
  "packing_list": ["item", "item"],
  "waypoints": ["place", "place"]
}

Be concrete and realistic: name actual businesses and sights, include
timings and approximate costs in rupees.`,
		days, dest.Name, dest.State, dest.Type, queryContext, days)

	raw, err := g.ai.Complete(system, user, true)
	if err != nil {
		log.Printf("⚠️  Itinerary generation failed for %s: %v — using template", dest.Name, err)
		return fallback
	}

	var plan Itinerary
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &plan); err != nil {
		log.Printf("⚠️  Itinerary response unparseable for %s: %v — using template", dest.Name, err)
		return fallback
	}
	if len(plan.Days) != days {
		log.Printf("⚠️  Itinerary for %s has %d days, wanted %d — using template", dest.Name, len(plan.Days), days)
		return fallback
	}

	if len(plan.Waypoints) == 0 {
		plan.Waypoints = fallback.Waypoints
	}
	return plan
}

// defaultItinerary is the deterministic template: no external calls,
// generic but well-formed per-day structure.
func (g *ItineraryGenerator) defaultItinerary(dest store.Destination, days int) Itinerary {
	name := dest.Name
	if name == "" {
		name = "your destination"
	}

	waypoints := dest.Waypoints
	if len(waypoints) == 0 {
		waypoints = []string{"City Center", "Local Market"}
	}

	tags := dest.Tags()
	plan := Itinerary{
		Header: fmt.Sprintf("Your %d-day getaway to %s", days, name),
		Footer: fmt.Sprintf("Best enjoyed %s. Safe travels!", bestTimeOr(dest, "year-round")),
		PackingList: []string{
			"Comfortable walking shoes",
			"Power bank and chargers",
			"Light layers for the evening",
			"Reusable water bottle",
		},
		Waypoints: waypoints,
	}

	for i := 1; i <= days; i++ {
		landmark := waypoints[(i-1)%len(waypoints)]
		title := fmt.Sprintf("Exploring %s", name)
		if len(tags) > 0 {
			title = fmt.Sprintf("%s in %s", tags[(i-1)%len(tags)], name)
		}

		plan.Days = append(plan.Days, ItineraryDay{
			DayLabel: fmt.Sprintf("Day %d", i),
			Title:    title,
			Subtitle: fmt.Sprintf("A relaxed day around %s.", landmark),
			Morning: []string{
				fmt.Sprintf("Breakfast at a local cafe near %s", landmark),
				fmt.Sprintf("Visit %s before the crowds arrive", landmark),
			},
			Afternoon: []string{
				"Lunch featuring regional specialities",
				"Wander through a nearby museum or park",
			},
			Evening: []string{
				"Catch the sunset from a scenic viewpoint",
				"Dinner at a well-reviewed local restaurant",
			},
		})
	}
	return plan
}

func bestTimeOr(dest store.Destination, fallback string) string {
	if dest.BestTimeToVisit != "" {
		return dest.BestTimeToVisit
	}
	return fallback
}

// parseDays extracts the first integer from free text, defaulting to 2 and
// clamping to [1, 5].
func parseDays(hint string) int {
	days := 0
	found := false
	for _, r := range hint {
		if r >= '0' && r <= '9' {
			days = days*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	if !found {
		days = defaultItineraryDays
	}
	if days < minItineraryDays {
		days = minItineraryDays
	}
	if days > maxItineraryDays {
		days = maxItineraryDays
	}
	return days
}
