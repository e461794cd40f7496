// Package store holds the curated destination dataset, loaded once at
// startup and read-only thereafter.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ─── Models ──────────────────────────────────────────────────────────────────

// Destination is one record from the curated dataset. The dataset file is
// produced out-of-band by the spreadsheet import step; this struct is the
// contract for its output.
type Destination struct {
	ID                int      `json:"id"`
	Slug              string   `json:"slug"`
	Name              string   `json:"name"`
	State             string   `json:"state"`
	Type              string   `json:"type"`
	FamousFor         string   `json:"famous_for"` // comma-separated tags
	ShortDescription  string   `json:"short_description"`
	BestTimeToVisit   string   `json:"best_time_to_visit"`
	IdealDurationDays string   `json:"ideal_duration_days"`
	SuitableFor       string   `json:"suitable_for"`
	Price             string   `json:"price"`
	Waypoints         []string `json:"waypoints"`
}

// Tags splits the comma-separated famous-for field into trimmed tags.
func (d Destination) Tags() []string {
	var tags []string
	for _, t := range strings.Split(d.FamousFor, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the in-memory destination set. It is never mutated after Load,
// so concurrent reads need no synchronization.
type Store struct {
	destinations []Destination
	bySlug       map[string]*Destination
}

type datasetFile struct {
	Destinations []Destination `json:"destinations"`
}

// Load reads the dataset JSON file ({"destinations": [...]}) and builds
// the slug index. Slugs must be unique; the slug is the only external
// identity contract for a destination.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var file datasetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	return New(file.Destinations)
}

// New builds a Store from an already-parsed destination list.
func New(destinations []Destination) (*Store, error) {
	s := &Store{
		destinations: destinations,
		bySlug:       make(map[string]*Destination, len(destinations)),
	}
	for i := range s.destinations {
		d := &s.destinations[i]
		if d.Slug == "" {
			return nil, fmt.Errorf("destination %q (id %d) has no slug", d.Name, d.ID)
		}
		if _, dup := s.bySlug[d.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in dataset", d.Slug)
		}
		s.bySlug[d.Slug] = d
	}
	return s, nil
}

// Empty returns a store with no destinations. Used when the dataset file
// is missing; search then yields an empty result list instead of failing.
func Empty() *Store {
	return &Store{bySlug: map[string]*Destination{}}
}

// All returns the full destination list in dataset order.
func (s *Store) All() []Destination {
	return s.destinations
}

// Len reports the number of loaded destinations.
func (s *Store) Len() int {
	return len(s.destinations)
}

// BySlug resolves a destination by its slug, or nil when unknown.
func (s *Store) BySlug(slug string) *Destination {
	return s.bySlug[slug]
}

// ByName resolves a destination by case-insensitive name or slug match,
// or nil when unknown.
func (s *Store) ByName(name string) *Destination {
	name = strings.TrimSpace(name)
	if d := s.bySlug[strings.ToLower(name)]; d != nil {
		return d
	}
	lower := strings.ToLower(name)
	for i := range s.destinations {
		if strings.ToLower(s.destinations[i].Name) == lower {
			return &s.destinations[i]
		}
	}
	return nil
}

// Suggest returns destination names containing q (case-insensitive),
// capped at limit. An empty query yields nothing.
func (s *Store) Suggest(q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || limit <= 0 {
		return []string{}
	}

	names := make([]string, 0, limit)
	for i := range s.destinations {
		if strings.Contains(strings.ToLower(s.destinations[i].Name), q) {
			names = append(names, s.destinations[i].Name)
			if len(names) == limit {
				break
			}
		}
	}
	return names
}
