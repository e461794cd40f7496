package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekendtraveller/store"
)

func testAssembler(t *testing.T, s *store.Store) *TripAssembler {
	t.Helper()
	matcher := NewQueryMatcher(s, nil, rand.New(rand.NewSource(1)))
	media := NewMediaEnricher(nil, nil) // all fallbacks
	generator := NewItineraryGenerator(nil)
	return NewTripAssembler(s, matcher, media, generator)
}

func TestAssemble_EmptyStore(t *testing.T) {
	a := testAssembler(t, store.Empty())

	got := a.Assemble("Goa beaches")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssemble_ItineraryOnFirstResultOnly(t *testing.T) {
	a := testAssembler(t, testStore(t))

	got := a.Assemble("tea gardens") // matches Munnar and Darjeeling

	require.Len(t, got, 2)
	assert.NotNil(t, got[0].Itinerary)
	assert.Nil(t, got[1].Itinerary)
}

func TestAssemble_ShapesTripFields(t *testing.T) {
	s, err := store.New([]store.Destination{{
		ID: 2, Slug: "goa", Name: "Goa", State: "Goa", Type: "Beach",
		FamousFor:         "Baga Beach, Fort Aguada",
		ShortDescription:  "Sun, sand and seafood.",
		IdealDurationDays: "3",
		Price:             "₹12,000 - ₹25,000",
	}})
	require.NoError(t, err)
	a := testAssembler(t, s)

	got := a.Assemble("Goa")

	require.Len(t, got, 1)
	trip := got[0]
	assert.Equal(t, 2, trip.ID)
	assert.Equal(t, "goa", trip.Slug)
	assert.Equal(t, "Goa", trip.Title)
	assert.Equal(t, "Goa, Goa", trip.Location)
	assert.Equal(t, "Sun, sand and seafood.", trip.Description)
	assert.Equal(t, "₹12,000 - ₹25,000", trip.Price)
	assert.Equal(t, "3 Days", trip.Duration)
	assert.Equal(t, []string{"Baga Beach", "Fort Aguada"}, trip.Attractions)
	assert.Equal(t, []string{"Beach", "Goa"}, trip.Tags)
	assert.Equal(t, PlaceholderImage, trip.ImageURL, "no media providers configured")
	assert.Empty(t, trip.VideoURL)
	assert.InDelta(t, 4.5, trip.Rating, 0.001)
	require.NotNil(t, trip.Itinerary)
	assert.Len(t, trip.Itinerary.Days, 3, "day count follows ideal duration")
}

func TestAssemble_FallbackQueryStillYieldsTrips(t *testing.T) {
	a := testAssembler(t, testStore(t))

	got := a.Assemble("asdkjasdlkj")

	require.Len(t, got, 3)
	assert.NotNil(t, got[0].Itinerary)
	for _, trip := range got {
		assert.NotEmpty(t, trip.Title)
		assert.Equal(t, PlaceholderImage, trip.ImageURL)
	}
}

func TestDestinationRating_Stable(t *testing.T) {
	d := store.Destination{ID: 7}
	assert.Equal(t, destinationRating(d), destinationRating(d))
	assert.GreaterOrEqual(t, destinationRating(d), 4.3)
	assert.LessOrEqual(t, destinationRating(d), 4.9)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2 Days", formatDuration(""))
	assert.Equal(t, "1 Day", formatDuration("1"))
	assert.Equal(t, "3 Days", formatDuration("3"))
	assert.Equal(t, "2 Nights / 3 Days", formatDuration("2 Nights / 3 Days"))
}
