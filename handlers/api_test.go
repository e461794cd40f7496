package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekendtraveller/services"
	"weekendtraveller/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New([]store.Destination{
		{ID: 1, Slug: "rishikesh", Name: "Rishikesh", State: "Uttarakhand", Type: "Adventure",
			FamousFor: "River Rafting, Yoga Retreats", ShortDescription: "Rafting on the Ganges.",
			IdealDurationDays: "2", Price: "₹6,000", Waypoints: []string{"Laxman Jhula"}},
		{ID: 2, Slug: "goa", Name: "Goa", State: "Goa", Type: "Beach",
			FamousFor: "Baga Beach", ShortDescription: "Sun and sand.",
			IdealDurationDays: "3", Price: "₹12,000"},
		{ID: 3, Slug: "munnar", Name: "Munnar", State: "Kerala", Type: "Hill Station",
			FamousFor: "Tea Gardens", ShortDescription: "Rolling tea country.",
			IdealDurationDays: "3", Price: "₹8,000"},
	})
	require.NoError(t, err)

	// No external providers configured: every enrichment runs its fallback.
	matcher := services.NewQueryMatcher(s, nil, rand.New(rand.NewSource(1)))
	media := services.NewMediaEnricher(nil, nil)
	generator := services.NewItineraryGenerator(nil)
	assembler := services.NewTripAssembler(s, matcher, media, generator)

	r := gin.New()
	NewAPI(s, assembler, media, generator, []byte("test-secret")).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---- /search ---------------------------------------------------------------

func TestSearch_ExactMatchFirstWithItinerary(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/search", gin.H{"query": "Rishikesh rafting"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Trips)
	assert.Equal(t, "rishikesh", resp.Trips[0].Slug)
	assert.NotNil(t, resp.Trips[0].Itinerary, "first trip carries the itinerary")
	assert.Equal(t, services.PlaceholderImage, resp.Trips[0].ImageURL)
	for _, trip := range resp.Trips[1:] {
		assert.Nil(t, trip.Itinerary)
	}
}

func TestSearch_UnmatchedQueryStillReturnsTrips(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/search", gin.H{"query": "asdkjasdlkj"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Trips, 3)
}

func TestSearch_MissingQuery(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/search", gin.H{"location": "north"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearch_BlankQuery(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/search", gin.H{"query": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- /api/destinations -----------------------------------------------------

func TestDestinationBySlug(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/destinations/goa", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Goa", resp["name"])
	assert.Equal(t, services.PlaceholderImage, resp["image_url"])
}

func TestDestinationBySlug_Unknown(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/destinations/unknown-slug", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Destination not found"}`, w.Body.String())
}

func TestSuggest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/destinations/suggest?q=mu", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, []string{"Munnar"}, names)
}

func TestSuggest_EmptyQuery(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/destinations/suggest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// ---- /api/generate-itinerary -----------------------------------------------

func TestGenerateItinerary_KnownDestination(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", gin.H{"destination": "Goa", "query": "beach weekend"})

	require.Equal(t, http.StatusOK, w.Code)
	var plan services.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Days, 3, "day count follows the stored ideal duration")
	assert.Contains(t, plan.Header, "Goa")
}

func TestGenerateItinerary_UnknownDestination(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", gin.H{"destination": "Shangri-La"})

	require.Equal(t, http.StatusOK, w.Code)
	var plan services.Itinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Days, 2, "unknown destinations default to 2 days")
	assert.Contains(t, plan.Header, "Shangri-La")
}

func TestGenerateItinerary_MissingDestination(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/generate-itinerary", gin.H{"query": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- /api/itinerary/pdf ------------------------------------------------------

func TestItineraryPDF(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/itinerary/pdf", gin.H{"destination": "Munnar", "query": "tea"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.GreaterOrEqual(t, w.Body.Len(), 4)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

// ---- /api/video/background ---------------------------------------------------

func TestBackgroundVideo_NoProvider(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/video/background?query=india", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"video_url": null}`, w.Body.String())
}

// ---- /api/login --------------------------------------------------------------

func TestLogin_SetsHardenedCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", nil)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "auth_token", c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

	// The demo token is a valid signed JWT.
	token, err := jwt.ParseWithClaims(c.Value, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "demo-user", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

// ---- /api/health -------------------------------------------------------------

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(3), resp["destinations"])
}
