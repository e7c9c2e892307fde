// Package google implements the place-search and geocoding backend on top of
// the Google Maps Places Nearby Search and Geocoding web services.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"sensitive-places-api/internal/models"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// ErrMissingAPIKey is returned by Probe when no API key is configured.
var ErrMissingAPIKey = errors.New("google: api key not configured")

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default http.Client. The supplied client is
// used as is: WithTimeout does not modify it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client. It has
// no effect when a client is supplied through WithHTTPClient, whatever the
// option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// Client talks to the Google Maps web services.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// NewClient creates a Google Maps client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		timeout: 10 * time.Second,
		limiter: rate.NewLimiter(10, 10),
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location *latLng `json:"location"`
}

type nearbyResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Geometry geometry `json:"geometry"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity"`
}

type nearbyResponse struct {
	Results      []nearbyResult `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
}

type geocodeResult struct {
	Geometry         geometry `json:"geometry"`
	FormattedAddress string   `json:"formatted_address"`
}

type geocodeResponse struct {
	Results      []geocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
}

// NearbySearch runs one Places Nearby Search. The provider status is passed
// through unchanged; only transport and decoding problems are errors.
func (c *Client) NearbySearch(ctx context.Context, q models.PlaceQuery) (models.PlaceSearchResponse, error) {
	params := url.Values{
		"location": {strconv.FormatFloat(q.Location.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(q.Location.Lng, 'f', -1, 64)},
		"radius":   {strconv.Itoa(q.Radius)},
		"type":     {q.Type},
		"key":      {c.apiKey},
	}

	var resp nearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		return models.PlaceSearchResponse{}, err
	}

	out := models.PlaceSearchResponse{
		Status:  models.ProviderStatus(resp.Status),
		Results: make([]models.RawPlace, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		p := models.RawPlace{
			ID:       r.PlaceID,
			Name:     r.Name,
			Tags:     r.Types,
			Locality: r.Vicinity,
		}
		if r.Geometry.Location != nil {
			p.Location = &models.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
		}
		out.Results = append(out.Results, p)
	}

	if out.Status != models.StatusOK && out.Status != models.StatusZeroResults {
		log.Warn().
			Str("type", q.Type).
			Str("status", resp.Status).
			Str("message", resp.ErrorMessage).
			Msg("google: nearby search returned error status")
	}
	return out, nil
}

// Geocode resolves an address restricted to q.Country. ZERO_RESULTS is a
// not-found answer; any other non-OK status is a *models.StatusError.
func (c *Client) Geocode(ctx context.Context, q models.GeocodeQuery) (models.GeocodeResult, error) {
	params := url.Values{
		"address": {q.Address},
		"key":     {c.apiKey},
	}
	if q.Country != "" {
		params.Set("region", strings.ToLower(q.Country))
		params.Set("components", "country:"+strings.ToUpper(q.Country))
	}

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return models.GeocodeResult{}, err
	}

	switch models.ProviderStatus(resp.Status) {
	case models.StatusOK:
		if len(resp.Results) == 0 || resp.Results[0].Geometry.Location == nil {
			return models.GeocodeResult{Found: false}, nil
		}
		loc := resp.Results[0].Geometry.Location
		return models.GeocodeResult{Found: true, Location: models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}}, nil
	case models.StatusZeroResults:
		return models.GeocodeResult{Found: false}, nil
	default:
		return models.GeocodeResult{}, &models.StatusError{Status: models.ProviderStatus(resp.Status), Message: resp.ErrorMessage}
	}
}

// Probe checks that the client is usable.
func (c *Client) Probe(_ context.Context) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("google: rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("google: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the full request URL, including the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("google: send request %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("google: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("google: unmarshal response: %w", err)
	}
	return nil
}
