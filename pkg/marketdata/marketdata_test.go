package marketdata_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"saham/pkg/marketdata"

	"github.com/stretchr/testify/assert"
)

// quoteServer stubs the Alpha Vantage endpoint with a fixed JSON body.
func quoteServer(t *testing.T, status int, body map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TIME_SERIES_INTRADAY", r.URL.Query().Get("function"))
		assert.Equal(t, "60min", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.URL.Query().Get("symbol"))
		w.WriteHeader(status)
		if body != nil {
			json.NewEncoder(w).Encode(body)
		}
	}))
}

func TestClient_GetCurrentPrice(t *testing.T) {
	// The newest bar is still forming; the client must return the open of
	// the bar before it.
	server := quoteServer(t, http.StatusOK, map[string]interface{}{
		"Time Series (60min)": map[string]map[string]string{
			"2024-01-02 15:00:00": {"1. open": "152.10"},
			"2024-01-02 14:00:00": {"1. open": "150.25"},
			"2024-01-02 13:00:00": {"1. open": "149.80"},
		},
	})
	defer server.Close()

	client := marketdata.NewClient("demo", server.URL)
	price, err := client.GetCurrentPrice("AAPL")
	assert.NoError(t, err)
	assert.Equal(t, 150.25, price)
}

func TestClient_GetCurrentPrice_RateLimited(t *testing.T) {
	// Throttling comes back as a 200 with a Note instead of a series.
	server := quoteServer(t, http.StatusOK, map[string]interface{}{
		"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute.",
	})
	defer server.Close()

	client := marketdata.NewClient("demo", server.URL)
	_, err := client.GetCurrentPrice("AAPL")
	assert.ErrorIs(t, err, marketdata.ErrRateLimited)
}

func TestClient_GetCurrentPrice_UnknownTicker(t *testing.T) {
	server := quoteServer(t, http.StatusOK, map[string]interface{}{
		"Error Message": "Invalid API call. Please retry or visit the documentation.",
	})
	defer server.Close()

	client := marketdata.NewClient("demo", server.URL)
	_, err := client.GetCurrentPrice("NOTREAL")
	assert.ErrorIs(t, err, marketdata.ErrUnknownTicker)
}

func TestClient_GetCurrentPrice_ShortSeries(t *testing.T) {
	// With only the still-forming bar there is no completed bar to read.
	server := quoteServer(t, http.StatusOK, map[string]interface{}{
		"Time Series (60min)": map[string]map[string]string{
			"2024-01-02 15:00:00": {"1. open": "152.10"},
		},
	})
	defer server.Close()

	client := marketdata.NewClient("demo", server.URL)
	_, err := client.GetCurrentPrice("AAPL")
	assert.ErrorIs(t, err, marketdata.ErrProviderUnavailable)
}

func TestClient_GetCurrentPrice_ProviderDown(t *testing.T) {
	server := quoteServer(t, http.StatusInternalServerError, nil)
	client := marketdata.NewClient("demo", server.URL)

	_, err := client.GetCurrentPrice("AAPL")
	assert.ErrorIs(t, err, marketdata.ErrProviderUnavailable)

	// A dead endpoint is the same typed failure.
	server.Close()
	_, err = client.GetCurrentPrice("AAPL")
	assert.ErrorIs(t, err, marketdata.ErrProviderUnavailable)
}
