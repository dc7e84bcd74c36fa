// Package marketdata is the HTTP client for the market-data gateway,
// which fronts the quote provider and the average-cost metric service.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is an HTTP client for the market-data gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new market-data client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetClose fetches the close quote for a holding's ticker as of a
// calendar day. A missing or non-finite quote returns (nil, nil): the
// caller treats it as "no candidate" for the valuation chain, not as a
// failure.
func (c *Client) GetClose(ctx context.Context, portfolioID int64, ticker string, asOf time.Time) (*float64, error) {
	params := url.Values{}
	params.Set("portfolio_id", strconv.FormatInt(portfolioID, 10))
	params.Set("ticker", ticker)
	params.Set("as_of", asOf.Format("2006-01-02"))

	var out quoteResponse
	if err := c.doRequest(ctx, "/quotes", params, &out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("quote lookup failed for %s: %s", ticker, out.Error)
	}
	return out.Payload.Close, nil
}

// GetAverageCost fetches the authoritative average cost for a holding.
// Absent values return (nil, nil).
func (c *Client) GetAverageCost(ctx context.Context, portfolioID int64, ticker string) (*float64, error) {
	params := url.Values{}
	params.Set("portfolio_id", strconv.FormatInt(portfolioID, 10))
	params.Set("ticker", ticker)

	var out averageCostResponse
	if err := c.doRequest(ctx, "/average-cost", params, &out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("average cost lookup failed for %s: %s", ticker, out.Error)
	}
	return out.Payload.AverageCost, nil
}

func (c *Client) doRequest(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market-data gateway returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
