// Package glo fetches published draw results from the Government Lottery
// Office API.
package glo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://www.glo.or.th/api/checking"

// Client reads published lottery results.
type Client interface {
	LatestDraw(ctx context.Context) (*DrawResult, error)
}

// DrawResult is a published draw, reduced to the prizes the product displays.
type DrawResult struct {
	Date       string   `json:"date"`
	FirstPrize string   `json:"first_prize"`
	FrontThree []string `json:"front_three"`
	RearThree  []string `json:"rear_three"`
	RearTwo    string   `json:"rear_two"`
}

// latestResponse mirrors the GLO getLatestLottery payload.
type latestResponse struct {
	Response struct {
		Date string `json:"date"`
		Data struct {
			First  prizeEntry `json:"first"`
			Last3F prizeEntry `json:"last3f"`
			Last3B prizeEntry `json:"last3b"`
			Last2  prizeEntry `json:"last2"`
		} `json:"data"`
	} `json:"response"`
}

type prizeEntry struct {
	Number []struct {
		Value string `json:"value"`
	} `json:"number"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

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

// NewClient creates a GLO results client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LatestDraw(ctx context.Context) (*DrawResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/getLatestLottery", bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, eris.Wrap(err, "glo: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "glo: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "glo: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("glo: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var raw latestResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, eris.Wrap(err, "glo: unmarshal response")
	}

	return &DrawResult{
		Date:       raw.Response.Date,
		FirstPrize: firstValue(raw.Response.Data.First),
		FrontThree: values(raw.Response.Data.Last3F),
		RearThree:  values(raw.Response.Data.Last3B),
		RearTwo:    firstValue(raw.Response.Data.Last2),
	}, nil
}

func firstValue(e prizeEntry) string {
	if len(e.Number) == 0 {
		return ""
	}
	return e.Number[0].Value
}

func values(e prizeEntry) []string {
	out := make([]string, 0, len(e.Number))
	for _, n := range e.Number {
		out = append(out, n.Value)
	}
	return out
}
