package services

import (
	"strings"

	"weekendtraveller/store"
)

// Trip is the user-facing, enriched presentation of a destination for one
// search response. Derived per request, never stored.
type Trip struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Duration    string     `json:"duration"`
	Rating      float64    `json:"rating"`
	Attractions []string   `json:"attractions"`
	ImageURL    string     `json:"image_url"`
	VideoURL    string     `json:"video_url,omitempty"`
	Tags        []string   `json:"tags"`
	Itinerary   *Itinerary `json:"itinerary,omitempty"`
}

// TripAssembler runs the full pipeline: match, enrich each result with
// media, generate an itinerary for the top result only, shape the list.
type TripAssembler struct {
	store     *store.Store
	matcher   *QueryMatcher
	media     *MediaEnricher
	generator *ItineraryGenerator
}

func NewTripAssembler(s *store.Store, matcher *QueryMatcher, media *MediaEnricher, generator *ItineraryGenerator) *TripAssembler {
	return &TripAssembler{store: s, matcher: matcher, media: media, generator: generator}
}

// Assemble never fails: enrichment failures degrade single entries to
// their fallback values without touching siblings, and an empty store
// yields an empty list.
func (a *TripAssembler) Assemble(query string) []Trip {
	if a.store.Len() == 0 {
		return []Trip{}
	}

	matches := a.matcher.Match(query)
	trips := make([]Trip, 0, len(matches))

	for i, dest := range matches {
		media := a.media.FetchMedia(dest.Name + " " + dest.Type)
		trip := buildTrip(dest, media)

		// Detailed plans only for the top result: generating one per
		// entry would multiply LLM cost and latency for little benefit.
		if i == 0 {
			plan := a.generator.Generate(dest, query, dest.IdealDurationDays)
			trip.Itinerary = &plan
		}

		trips = append(trips, trip)
	}
	return trips
}

func buildTrip(dest store.Destination, media MediaResult) Trip {
	return Trip{
		ID:          dest.ID,
		Slug:        dest.Slug,
		Title:       dest.Name,
		Location:    dest.Name + ", " + dest.State,
		Description: dest.ShortDescription,
		Price:       dest.Price,
		Duration:    formatDuration(dest.IdealDurationDays),
		Rating:      destinationRating(dest),
		Attractions: dest.Tags(),
		ImageURL:    media.ImageURL,
		VideoURL:    media.VideoURL,
		Tags:        []string{dest.Type, dest.State},
	}
}

// destinationRating derives a stable display rating in [4.3, 4.9] from
// the destination id. The dataset carries no rating column; a fixed
// pseudo-rating keeps responses deterministic.
func destinationRating(dest store.Destination) float64 {
	return 4.3 + float64(dest.ID%7)*0.1
}

// formatDuration turns a bare day count ("3") into display text; values
// that already read like text pass through.
func formatDuration(d string) string {
	d = strings.TrimSpace(d)
	if d == "" {
		return "2 Days"
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			return d
		}
	}
	if d == "1" {
		return "1 Day"
	}
	return d + " Days"
}
