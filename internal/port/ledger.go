package port

import (
	"context"

	"omsbridge/internal/domain"
)

// LedgerSink posts a validated invoice into the ERP ledger. On success it
// returns the invoice number generated by the ERP. The engine never retries
// a failed submit; that responsibility stays with the caller.
type LedgerSink interface {
	Submit(ctx context.Context, sub *domain.InvoiceSubmission) (string, error)
}

// OrderForwarder sends a completed commerce order to the ERP.
type OrderForwarder interface {
	ForwardOrder(ctx context.Context, order *domain.CompletedOrder) error
}

// InventorySource pulls current stock levels from the ERP.
type InventorySource interface {
	FetchStockLevels(ctx context.Context) ([]domain.StockLevel, error)
}
