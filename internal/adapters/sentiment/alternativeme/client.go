package alternativeme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"argus/pkg/errors"
)

const defaultBaseURL = "https://api.alternative.me"

// Client fetches the Crypto Fear & Greed Index from Alternative.me.
// Free API, no authentication required.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a Fear & Greed client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
		Timestamp           string `json:"timestamp"`
	} `json:"data"`
	Metadata struct {
		Error string `json:"error"`
	} `json:"metadata"`
}

// Index returns the latest Fear & Greed index value in [0,100].
func (c *Client) Index(ctx context.Context) (int, error) {
	url := c.baseURL + "/fng/?limit=1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errors.Wrap(err, "create API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "API request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, errors.Wrap(err, "decode API response")
	}

	if apiResp.Metadata.Error != "" {
		return 0, fmt.Errorf("API error: %s", apiResp.Metadata.Error)
	}

	if len(apiResp.Data) == 0 {
		return 0, fmt.Errorf("no data in API response")
	}

	value, err := strconv.Atoi(apiResp.Data[0].Value)
	if err != nil {
		return 0, errors.Wrap(err, "parse fear greed value")
	}

	if value < 0 || value > 100 {
		return 0, fmt.Errorf("fear greed value %d out of range", value)
	}

	return value, nil
}
