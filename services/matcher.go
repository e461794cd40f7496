package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"weekendtraveller/store"
)

const (
	// maxMatches caps every result set.
	maxMatches = 6
	// semanticThreshold: the LLM tier only runs when the heuristic tiers
	// produced fewer matches than this.
	semanticThreshold = 3
	// randomFallbackCount: destinations drawn at random when nothing matched.
	randomFallbackCount = 3
)

// stopWords are discarded before token matching: determiners, trip filler
// and generic travel words that match nothing useful.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"near": true, "trip": true, "trips": true, "travel": true,
	"weekend": true, "getaway": true, "getaways": true, "vacation": true,
	"holiday": true, "visit": true, "visiting": true, "best": true,
	"place": true, "places": true, "idea": true, "ideas": true,
	"plan": true, "want": true, "going": true, "somewhere": true,
}

// QueryMatcher ranks destinations for a free-text query using a tiered
// heuristic cascade. Each tier is a separate method so its precedence is
// independently testable.
type QueryMatcher struct {
	store *store.Store
	ai    ChatCompleter
	rng   *rand.Rand
}

// NewQueryMatcher builds a matcher. ai may be nil (semantic tier skipped);
// rng may be nil (a default source is used for the random fallback).
func NewQueryMatcher(s *store.Store, ai ChatCompleter, rng *rand.Rand) *QueryMatcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &QueryMatcher{store: s, ai: ai, rng: rng}
}

// Match returns up to 6 destinations ordered by tier priority, then by
// dataset order within a tier. A non-empty store always yields a
// non-empty result: when nothing matches, up to 3 random destinations
// are returned instead.
func (m *QueryMatcher) Match(query string) []store.Destination {
	if m.store.Len() == 0 {
		return []store.Destination{}
	}

	tokens := significantTokens(query)

	matches := m.matchExactName(query)
	if len(matches) == 0 {
		matches = m.matchTokens(tokens)
	}
	if len(matches) == 0 {
		matches = m.matchCompositeText(tokens)
	}

	if len(matches) < semanticThreshold && m.ai != nil {
		matches = append(matches, m.matchSemantic(query, matches)...)
	}

	if len(matches) == 0 {
		matches = m.randomPick()
	}

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// matchExactName: tier 1. The destination name appears verbatim in the
// query (case-insensitive).
func (m *QueryMatcher) matchExactName(query string) []store.Destination {
	lower := strings.ToLower(query)
	var out []store.Destination
	for _, d := range m.store.All() {
		if strings.Contains(lower, strings.ToLower(d.Name)) {
			out = append(out, d)
		}
	}
	return out
}

// matchTokens: tier 2. A significant query token equals the destination
// name exactly.
func (m *QueryMatcher) matchTokens(tokens []string) []store.Destination {
	if len(tokens) == 0 {
		return nil
	}
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	var out []store.Destination
	for _, d := range m.store.All() {
		if tokenSet[strings.ToLower(d.Name)] {
			out = append(out, d)
		}
	}
	return out
}

// matchCompositeText: tier 3. A significant token appears as a substring
// of the destination's combined name/state/type/famous-for text. Only
// reached when tiers 1–2 found nothing.
func (m *QueryMatcher) matchCompositeText(tokens []string) []store.Destination {
	if len(tokens) == 0 {
		return nil
	}

	var out []store.Destination
	for _, d := range m.store.All() {
		composite := strings.ToLower(d.Name + " " + d.State + " " + d.Type + " " + d.FamousFor)
		for _, t := range tokens {
			if strings.Contains(composite, t) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// matchSemantic: tier 4. Ask the LLM which destination names fit the
// query. Any call or parse failure means zero additional matches; the
// error never leaves this method. Results already selected by earlier
// tiers are dropped (de-dup by id).
func (m *QueryMatcher) matchSemantic(query string, already []store.Destination) []store.Destination {
	names := make([]string, 0, m.store.Len())
	for _, d := range m.store.All() {
		names = append(names, d.Name)
	}

	system := "You are a travel search assistant. You match user queries to destination names from a fixed list."
	user := fmt.Sprintf(
		"Destination list: %s\n\nUser query: %q\n\nReturn ONLY a JSON array of the destination names from the list that fit the query, best first, at most %d. No other text.",
		strings.Join(names, ", "), query, maxMatches,
	)

	raw, err := m.ai.Complete(system, user, false)
	if err != nil {
		log.Printf("⚠️  Semantic match failed: %v", err)
		return nil
	}

	var picked []string
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &picked); err != nil {
		log.Printf("⚠️  Semantic match returned unparseable output: %v", err)
		return nil
	}

	seen := make(map[int]bool, len(already))
	for _, d := range already {
		seen[d.ID] = true
	}

	var out []store.Destination
	for _, name := range picked {
		d := m.store.ByName(name)
		if d == nil || seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		out = append(out, *d)
	}
	return out
}

// randomPick: tier 5. Uniformly random destinations so an unmatched
// query still gets suggestions.
func (m *QueryMatcher) randomPick() []store.Destination {
	all := m.store.All()
	n := randomFallbackCount
	if len(all) < n {
		n = len(all)
	}

	picks := m.rng.Perm(len(all))[:n]
	out := make([]store.Destination, 0, n)
	for _, i := range picks {
		out = append(out, all[i])
	}
	return out
}

// significantTokens lowercases and splits the query, dropping stop words,
// punctuation and tokens of two characters or fewer.
func significantTokens(query string) []string {
	var out []string
	for _, raw := range strings.Fields(strings.ToLower(query)) {
		t := strings.Trim(raw, ".,!?;:'\"()")
		if len(t) <= 2 || stopWords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}
