// Package validator implements the invoice validation and tax reconciliation
// engine. A submission runs through an ordered sequence of checks — structural
// completeness, temporal consistency, delivery and value details, per-item
// arithmetic and tax reconciliation, e-invoice compliance — and the first
// violated rule wins: later stages never run, and at most one rejection is
// ever reported per call.
package validator

import (
	"context"
	"fmt"

	"omsbridge/internal/domain"
	"omsbridge/internal/port"
)

// Engine validates invoice submissions and, on success, posts them to the
// ledger. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	transporters port.TransporterRegistry
	ledger       port.LedgerSink
	strictDates  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrictDates makes the engine reject submissions whose date fields do
// not parse, instead of treating them as an unbounded past.
func WithStrictDates() Option {
	return func(e *Engine) { e.strictDates = true }
}

// NewEngine creates a validation engine over the given collaborators.
func NewEngine(transporters port.TransporterRegistry, ledger port.LedgerSink, opts ...Option) *Engine {
	e := &Engine{transporters: transporters, ledger: ledger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of an accepted submission.
type Result struct {
	InvoiceNumber string `json:"ginesysInvoiceNumber"`
}

// Validate runs every check against the submission and, if all pass,
// submits it to the ledger. The returned error is a *domain.Rejection for a
// rule violation, or wraps domain.ErrSubmissionFailed when the ledger
// refused a structurally sound document.
func (e *Engine) Validate(ctx context.Context, sub *domain.InvoiceSubmission) (*Result, error) {
	if err := e.Check(ctx, sub); err != nil {
		return nil, err
	}

	invoiceNo, err := e.ledger.Submit(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	return &Result{InvoiceNumber: invoiceNo}, nil
}

// Check runs the validation stages without submitting. It performs no I/O
// beyond the transporter lookup and is deterministic for identical input.
func (e *Engine) Check(ctx context.Context, sub *domain.InvoiceSubmission) error {
	if rej := checkStructural(sub); rej != nil {
		return rej
	}
	if rej := e.checkDates(sub); rej != nil {
		return rej
	}
	if rej := checkTradeGroup(sub); rej != nil {
		return rej
	}
	if rej := checkDelivery(sub); rej != nil {
		return rej
	}
	if err := e.checkTransporter(ctx, sub); err != nil {
		return err
	}
	if rej := checkValueDetails(sub); rej != nil {
		return rej
	}
	if rej := checkItems(sub); rej != nil {
		return rej
	}
	if rej := checkEInvoice(sub); rej != nil {
		return rej
	}
	return nil
}

func (e *Engine) checkTransporter(ctx context.Context, sub *domain.InvoiceSubmission) error {
	ok, err := e.transporters.Resolve(ctx, sub.DeliveryDetails.TransporterID)
	if err != nil {
		return fmt.Errorf("resolving transporter %q: %w", sub.DeliveryDetails.TransporterID, err)
	}
	if !ok {
		return domain.Reject(domain.CodeUnknownTransporter, "deliveryDetails.transporterId",
			"Value does not exist in the integration master mapping or is not valid")
	}
	return nil
}
