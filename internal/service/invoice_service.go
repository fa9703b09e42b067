package service

import (
	"context"
	"log"

	"omsbridge/internal/domain"
	"omsbridge/internal/validator"
)

// InvoiceService defines the invoice ingestion contract.
type InvoiceService interface {
	Ingest(ctx context.Context, sub *domain.InvoiceSubmission) (*validator.Result, error)
}

type invoiceService struct {
	engine *validator.Engine
}

// NewInvoiceService creates a new InvoiceService over the validation engine.
func NewInvoiceService(engine *validator.Engine) InvoiceService {
	return &invoiceService{engine: engine}
}

func (s *invoiceService) Ingest(ctx context.Context, sub *domain.InvoiceSubmission) (*validator.Result, error) {
	result, err := s.engine.Validate(ctx, sub)
	if err != nil {
		return nil, err
	}
	log.Printf("invoiceService: invoice %s accepted as %s", sub.IntgInvoiceID, result.InvoiceNumber)
	return result, nil
}
