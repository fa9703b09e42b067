package ginesys_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omsbridge/internal/config"
	"omsbridge/internal/domain"
	"omsbridge/internal/ledger/ginesys"
)

func newClient(serverURL string) *ginesys.Client {
	return ginesys.NewClient(&config.LedgerConfig{
		BaseURL: serverURL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

func TestClient_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success_returns_invoice_number", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/invoice", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var sub domain.InvoiceSubmission
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
			assert.Equal(t, "INTG-INV-1", sub.IntgInvoiceID)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":              true,
				"ginesysInvoiceNumber": "GIN-2024-0042",
			})
		}))
		defer srv.Close()

		got, err := newClient(srv.URL).Submit(ctx, &domain.InvoiceSubmission{IntgInvoiceID: "INTG-INV-1"})
		require.NoError(t, err)
		assert.Equal(t, "GIN-2024-0042", got)
	})

	t.Run("erp_rejection_surfaces_message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"error":   "duplicate invoice",
			})
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Submit(ctx, &domain.InvoiceSubmission{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate invoice")
	})

	t.Run("non_2xx_status_is_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Submit(ctx, &domain.InvoiceSubmission{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClient_ForwardOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order", r.URL.Path)

		var order domain.CompletedOrder
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Equal(t, "ORD-7", order.OrderID)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newClient(srv.URL).ForwardOrder(context.Background(), &domain.CompletedOrder{OrderID: "ORD-7"})
	assert.NoError(t, err)
}

func TestClient_FetchStockLevels(t *testing.T) {
	t.Run("decodes_levels", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/inventory", r.URL.Path)
			json.NewEncoder(w).Encode([]domain.StockLevel{
				{ProductID: "P-1", StockQuantity: 12},
				{ProductID: "P-2", StockQuantity: 0},
			})
		}))
		defer srv.Close()

		levels, err := newClient(srv.URL).FetchStockLevels(context.Background())
		require.NoError(t, err)
		require.Len(t, levels, 2)
		assert.Equal(t, "P-1", levels[0].ProductID)
		assert.Equal(t, 12.0, levels[0].StockQuantity)
	})

	t.Run("non_200_is_an_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).FetchStockLevels(context.Background())
		assert.Error(t, err)
	})
}
