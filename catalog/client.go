package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client calls the external catalog provider. One instance is built at
// startup and handed to the search surface explicitly; there is no
// package-level client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Search fetches product records for a query term at one store.
func (c *Client) Search(ctx context.Context, storeID, term string) ([]Product, error) {
	q := url.Values{}
	q.Set("store", storeID)
	q.Set("search", term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("catalog response decode failed: %w", err)
	}
	return products, nil
}
