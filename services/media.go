package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// PlaceholderImage is the static local path served when every image
// provider fails or none is configured.
const PlaceholderImage = "/images/default_trip.png"

// MediaResult carries the media URLs for one query. Empty strings mean
// "no result"; the enricher never reports an error.
type MediaResult struct {
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url,omitempty"`
}

// BackgroundVideo is a hero video with its Pexels attribution.
type BackgroundVideo struct {
	VideoURL         string `json:"video_url"`
	PhotographerName string `json:"photographer_name"`
	PhotographerURL  string `json:"photographer_url"`
	Duration         int    `json:"duration"`
}

// ─── Pexels ──────────────────────────────────────────────────────────────────

// PexelsClient is the primary provider: images and videos.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsClient returns nil when no API key is set.
func NewPexelsClient(apiKey string) *PexelsClient {
	if apiKey == "" {
		return nil
	}
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: "https://api.pexels.com",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *PexelsClient) get(path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequest("GET", c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

type pexelsPhotoResponse struct {
	Photos []struct {
		Src struct {
			Large2x   string `json:"large2x"`
			Landscape string `json:"landscape"`
			Original  string `json:"original"`
		} `json:"src"`
	} `json:"photos"`
}

// SearchImage returns the top landscape photo URL for the query.
func (c *PexelsClient) SearchImage(query string) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")

	body, err := c.get("/v1/search", q)
	if err != nil {
		return "", err
	}

	var resp pexelsPhotoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse pexels photos: %w", err)
	}
	if len(resp.Photos) == 0 {
		return "", fmt.Errorf("no pexels photos for %q", query)
	}

	src := resp.Photos[0].Src
	if src.Landscape != "" {
		return src.Landscape, nil
	}
	if src.Large2x != "" {
		return src.Large2x, nil
	}
	return src.Original, nil
}

type pexelsVideoResponse struct {
	Videos []struct {
		Duration int `json:"duration"`
		User     struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"user"`
		VideoFiles []struct {
			Width   int    `json:"width"`
			Quality string `json:"quality"`
			Link    string `json:"link"`
		} `json:"video_files"`
	} `json:"videos"`
}

// SearchVideo returns the best file of the top landscape video for the
// query, preferring HD encodes (quality "hd" or width ≥ 1280px).
func (c *PexelsClient) SearchVideo(query string) (*BackgroundVideo, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	q.Set("min_width", "1280")

	body, err := c.get("/videos/search", q)
	if err != nil {
		return nil, err
	}

	var resp pexelsVideoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse pexels videos: %w", err)
	}
	if len(resp.Videos) == 0 || len(resp.Videos[0].VideoFiles) == 0 {
		return nil, fmt.Errorf("no pexels videos for %q", query)
	}

	video := resp.Videos[0]
	link := video.VideoFiles[0].Link
	for _, f := range video.VideoFiles {
		if f.Quality == "hd" || f.Width >= 1280 {
			link = f.Link
			break
		}
	}

	return &BackgroundVideo{
		VideoURL:         link,
		PhotographerName: video.User.Name,
		PhotographerURL:  video.User.URL,
		Duration:         video.Duration,
	}, nil
}

// ─── Unsplash ────────────────────────────────────────────────────────────────

// UnsplashClient is the secondary, image-only provider.
type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

// NewUnsplashClient returns nil when no access key is set.
func NewUnsplashClient(accessKey string) *UnsplashClient {
	if accessKey == "" {
		return nil
	}
	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com",
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchImage returns the top landscape photo URL for the query.
func (c *UnsplashClient) SearchImage(query string) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", "1")
	q.Set("orientation", "landscape")
	q.Set("client_id", c.accessKey)

	req, err := http.NewRequest("GET", c.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed unsplashSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse unsplash response: %w", err)
	}
	if len(parsed.Results) == 0 || parsed.Results[0].URLs.Regular == "" {
		return "", fmt.Errorf("no unsplash photos for %q", query)
	}

	return parsed.Results[0].URLs.Regular, nil
}

// ─── Enricher ────────────────────────────────────────────────────────────────

// MediaEnricher resolves media for a query with ordered provider fallback:
// Pexels image + video, then Unsplash image, then the static placeholder.
// One attempt per provider; a failed call is a logged no-result, never an
// error for the caller.
type MediaEnricher struct {
	pexels   *PexelsClient
	unsplash *UnsplashClient
}

func NewMediaEnricher(pexels *PexelsClient, unsplash *UnsplashClient) *MediaEnricher {
	return &MediaEnricher{pexels: pexels, unsplash: unsplash}
}

// FetchMedia returns media for the query. Always well-formed: the image
// falls back to the placeholder path, the video to empty.
func (e *MediaEnricher) FetchMedia(query string) MediaResult {
	result := MediaResult{}

	if e.pexels != nil {
		if img, err := e.pexels.SearchImage(query); err != nil {
			log.Printf("⚠️  Pexels image lookup failed for %q: %v", query, err)
		} else {
			result.ImageURL = img
		}
		if video, err := e.pexels.SearchVideo(query); err != nil {
			log.Printf("⚠️  Pexels video lookup failed for %q: %v", query, err)
		} else {
			result.VideoURL = video.VideoURL
		}
	}

	if result.ImageURL == "" && e.unsplash != nil {
		if img, err := e.unsplash.SearchImage(query); err != nil {
			log.Printf("⚠️  Unsplash image lookup failed for %q: %v", query, err)
		} else {
			result.ImageURL = img
		}
	}

	if result.ImageURL == "" {
		result.ImageURL = PlaceholderImage
	}
	return result
}

// FetchBackgroundVideo returns a hero video with attribution, or nil when
// no video provider is configured or the lookup fails.
func (e *MediaEnricher) FetchBackgroundVideo(query string) *BackgroundVideo {
	if e.pexels == nil {
		return nil
	}
	video, err := e.pexels.SearchVideo(query)
	if err != nil {
		log.Printf("⚠️  Background video lookup failed for %q: %v", query, err)
		return nil
	}
	return video
}
