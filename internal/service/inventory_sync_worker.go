package service

import (
	"context"
	"log"
	"sync"
	"time"

	"omsbridge/internal/port"
)

// InventorySyncConfig holds settings for the inventory sync worker.
type InventorySyncConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// InventorySyncWorker periodically pulls stock levels from the ERP and
// pushes per-product updates to the commerce platform. A failed update is
// logged and skipped; the next cycle picks up whatever changed since.
type InventorySyncWorker struct {
	source  port.InventorySource
	updater port.StockUpdater
	cfg     InventorySyncConfig
	wg      sync.WaitGroup
}

// NewInventorySyncWorker creates a new InventorySyncWorker.
func NewInventorySyncWorker(source port.InventorySource, updater port.StockUpdater, cfg InventorySyncConfig) *InventorySyncWorker {
	return &InventorySyncWorker{
		source:  source,
		updater: updater,
		cfg:     cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight stock updates have finished.
func (w *InventorySyncWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	log.Printf("inventorySync: started (poll=%s, concurrency=%d)", w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("inventorySync: shutting down, waiting for in-flight updates...")
			w.wg.Wait()
			log.Printf("inventorySync: shutdown complete")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single fetch-and-push cycle.
func (w *InventorySyncWorker) RunOnce(ctx context.Context) {
	levels, err := w.source.FetchStockLevels(ctx)
	if err != nil {
		log.Printf("inventorySync: fetch failed: %v", err)
		return
	}
	if len(levels) == 0 {
		log.Printf("inventorySync: no inventory data fetched")
		return
	}

	sem := make(chan struct{}, w.cfg.Concurrency)
	for i := range levels {
		level := levels[i]

		sem <- struct{}{} // acquire
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-sem }() // release

			if err := w.updater.UpdateStock(ctx, level.ProductID, level.StockQuantity); err != nil {
				log.Printf("inventorySync: update failed for product %s: %v", level.ProductID, err)
				return
			}
			log.Printf("inventorySync: product %s stock set to %.0f", level.ProductID, level.StockQuantity)
		}()
	}
	w.wg.Wait()
}
