package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawad-inc/rawad/internal/shared/config"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *NominatimService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewNominatimService(&config.GeocoderConfig{
		BaseURL:        server.URL,
		UserAgent:      "test-agent",
		TimeoutSeconds: 5,
	})
}

func TestReverseGeocode(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"address": {
				"house_number": "15",
				"road": "King Fahd Road",
				"city": "Riyadh",
				"state": "Riyadh Province",
				"postcode": "12214",
				"country": "Saudi Arabia"
			}
		}`))
	})

	addr, err := svc.ReverseGeocode(context.Background(), 24.7136, 46.6753)
	require.NoError(t, err)
	assert.Equal(t, "15 King Fahd Road", addr.Line1)
	assert.Equal(t, "Riyadh", addr.City)
	assert.Equal(t, "Riyadh Province", addr.StateProvince)
	assert.Equal(t, "Saudi Arabia", addr.Country)
}

func TestReverseGeocode_TownFallback(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address": {"town": "Thuwal", "country": "Saudi Arabia"}}`))
	})

	addr, err := svc.ReverseGeocode(context.Background(), 22.28, 39.10)
	require.NoError(t, err)
	assert.Equal(t, "Thuwal", addr.City)
}

func TestReverseGeocode_ServerError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := svc.ReverseGeocode(context.Background(), 24.7136, 46.6753)
	assert.Error(t, err)
}
