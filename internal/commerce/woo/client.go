// Package woo implements the WooCommerce REST API client used for stock
// updates during inventory synchronization.
package woo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"omsbridge/internal/config"
)

// Client talks to the WooCommerce REST API with basic auth over the
// consumer key/secret pair.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	http           *http.Client
}

// NewClient creates a WooCommerce API client from config.
func NewClient(cfg *config.CommerceConfig) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		http:           &http.Client{Timeout: cfg.Timeout},
	}
}

type stockUpdate struct {
	StockQuantity float64 `json:"stock_quantity"`
}

// UpdateStock sets the stock quantity for one product.
func (c *Client) UpdateStock(ctx context.Context, productID string, quantity float64) error {
	body, err := json.Marshal(stockUpdate{StockQuantity: quantity})
	if err != nil {
		return fmt.Errorf("marshaling stock update: %w", err)
	}

	url := fmt.Sprintf("%s/wp-json/wc/v3/products/%s", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("updating stock for product %s: %w", productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("updating stock for product %s: unexpected status %d", productID, resp.StatusCode)
	}
	return nil
}
