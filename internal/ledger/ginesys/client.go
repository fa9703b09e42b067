// Package ginesys implements the Ginesys ERP API client: invoice posting,
// completed-order forwarding, and inventory reads.
package ginesys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"omsbridge/internal/config"
	"omsbridge/internal/domain"
)

// Client talks to the Ginesys ERP over HTTP with bearer-token auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Ginesys API client from config.
func NewClient(cfg *config.LedgerConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type submitResponse struct {
	Success              bool   `json:"success"`
	GinesysInvoiceNumber string `json:"ginesysInvoiceNumber"`
	Error                string `json:"error"`
}

// Submit posts a validated invoice to the ERP and returns the generated
// invoice number.
func (c *Client) Submit(ctx context.Context, sub *domain.InvoiceSubmission) (string, error) {
	var out submitResponse
	if err := c.post(ctx, "/invoice", sub, &out); err != nil {
		return "", err
	}
	if !out.Success {
		if out.Error != "" {
			return "", fmt.Errorf("ginesys rejected invoice: %s", out.Error)
		}
		return "", fmt.Errorf("ginesys rejected invoice")
	}
	return out.GinesysInvoiceNumber, nil
}

// ForwardOrder sends a completed commerce order to the ERP order endpoint.
func (c *Client) ForwardOrder(ctx context.Context, order *domain.CompletedOrder) error {
	return c.post(ctx, "/order", order, nil)
}

// FetchStockLevels pulls current inventory from the ERP.
func (c *Client) FetchStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/inventory", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching inventory: unexpected status %d", resp.StatusCode)
	}

	var levels []domain.StockLevel
	if err := json.NewDecoder(resp.Body).Decode(&levels); err != nil {
		return nil, fmt.Errorf("decoding inventory response: %w", err)
	}
	return levels, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("posting to %s: unexpected status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}
