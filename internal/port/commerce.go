package port

import "context"

// StockUpdater pushes a stock-quantity update for one product to the
// commerce platform.
type StockUpdater interface {
	UpdateStock(ctx context.Context, productID string, quantity float64) error
}
