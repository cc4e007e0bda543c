// Package tipster fetches the guru roster: well-known lottery tipsters and
// their published hit statistics.
package tipster

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// Client reads the guru roster service.
type Client interface {
	Roster(ctx context.Context) ([]Guru, error)
}

// Guru is one tipster entry on the roster.
type Guru struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"` // hit rate percentage
	LastHit  string  `json:"last_hit,omitempty"`
}

// Option configures the client.
type Option func(*httpClient)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a guru roster client for the given service URL.
func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Roster(ctx context.Context) ([]Guru, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/gurus", nil)
	if err != nil {
		return nil, eris.Wrap(err, "tipster: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "tipster: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "tipster: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("tipster: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var gurus []Guru
	if err := json.Unmarshal(body, &gurus); err != nil {
		return nil, eris.Wrap(err, "tipster: unmarshal response")
	}

	return gurus, nil
}
