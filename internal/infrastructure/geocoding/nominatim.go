// Package geocoding resolves coordinates to addresses via Nominatim.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/workspace"
	"github.com/rawad-inc/rawad/internal/shared/config"
)

// maxResponseSize bounds the reverse geocode response body (64KB).
const maxResponseSize = 64 << 10

// nominatimResponse is the subset of the Nominatim reverse endpoint we use.
type nominatimResponse struct {
	Address struct {
		HouseNumber string `json:"house_number"`
		Road        string `json:"road"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
	} `json:"address"`
}

// NominatimService resolves coordinates against a Nominatim instance. The
// public instance requires a descriptive User-Agent and no more than one
// request per second; callers are expected to go through the background
// task queue rather than geocode inline.
type NominatimService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimService(cfg *config.GeocoderConfig) *NominatimService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimService{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *NominatimService) ReverseGeocode(ctx context.Context, latitude, longitude float64) (workspace.Address, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", latitude))
	query.Set("lon", fmt.Sprintf("%f", longitude))
	query.Set("format", "jsonv2")

	endpoint := fmt.Sprintf("%s/reverse?%s", s.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return workspace.Address{}, fmt.Errorf("failed to build reverse geocode request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return workspace.Address{}, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return workspace.Address{}, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return workspace.Address{}, fmt.Errorf("failed to read reverse geocode response: %w", err)
	}

	var parsed nominatimResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return workspace.Address{}, fmt.Errorf("failed to parse reverse geocode response: %w", err)
	}

	return toAddress(parsed), nil
}

// toAddress maps the Nominatim fields onto the domain address. Nominatim
// reports the locality under city, town or village depending on the place
// type; the first non-empty one wins.
func toAddress(resp nominatimResponse) workspace.Address {
	a := resp.Address

	line1 := a.Road
	if a.HouseNumber != "" && a.Road != "" {
		line1 = a.HouseNumber + " " + a.Road
	}

	city := a.City
	if city == "" {
		city = a.Town
	}
	if city == "" {
		city = a.Village
	}

	return workspace.Address{
		Line1:         line1,
		Line2:         a.Suburb,
		City:          city,
		StateProvince: a.State,
		PostalCode:    a.Postcode,
		Country:       a.Country,
	}
}
