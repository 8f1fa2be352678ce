package marketdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
)

// Typed failures of the quote provider. Callers match these with errors.Is.
var (
	ErrProviderUnavailable = errors.New("market data provider unavailable")
	ErrUnknownTicker       = errors.New("unknown ticker")
	ErrRateLimited         = errors.New("market data provider rate limited")
)

// DefaultBaseURL is the Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// intradayResponse matches the JSON structure of Alpha Vantage's
// TIME_SERIES_INTRADAY endpoint at the 60min interval. Error responses come
// back as 200s with one of the message fields set instead of the series.
type intradayResponse struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	Information  string                       `json:"Information"`
	Series       map[string]map[string]string `json:"Time Series (60min)"`
}

// Client calls the Alpha Vantage intraday quote API. Each call is a single
// synchronous round trip: no retry, no caching, no configured timeout.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new quote client. An empty baseURL selects the real
// Alpha Vantage endpoint; tests point it at a local stub server.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// GetCurrentPrice returns the latest intraday opening price for a ticker.
// It requests the most recent 60-minute bars and returns the open of the
// second-most-recent bar: the newest bar is still forming, so the prior
// completed one is the freshest reliable value.
func (c *Client) GetCurrentPrice(ticker string) (float64, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_INTRADAY")
	q.Set("symbol", ticker)
	q.Set("interval", "60min")
	q.Set("outputsize", "compact")
	q.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: provider returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var body intradayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: decoding response: %v", ErrProviderUnavailable, err)
	}

	// The provider reports throttling in "Note" (and "Information" on the
	// free tier) and bad symbols in "Error Message", all with status 200.
	if body.Note != "" || body.Information != "" {
		return 0, fmt.Errorf("%w: %s%s", ErrRateLimited, body.Note, body.Information)
	}
	if body.ErrorMessage != "" {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	if len(body.Series) < 2 {
		return 0, fmt.Errorf("%w: intraday series too short for %s", ErrProviderUnavailable, ticker)
	}

	// Bar keys are "2006-01-02 15:04:05" timestamps, so lexicographic order
	// is chronological order.
	stamps := make([]string, 0, len(body.Series))
	for ts := range body.Series {
		stamps = append(stamps, ts)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(stamps)))

	openValue := body.Series[stamps[1]]["1. open"]
	price, err := strconv.ParseFloat(openValue, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad open value %q for %s", ErrProviderUnavailable, openValue, ticker)
	}
	return price, nil
}
