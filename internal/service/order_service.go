package service

import (
	"context"
	"fmt"
	"log"

	"omsbridge/internal/domain"
	"omsbridge/internal/port"
)

// OrderService forwards completed commerce orders to the ERP.
type OrderService interface {
	Forward(ctx context.Context, order *domain.CompletedOrder) error
}

type orderService struct {
	forwarder port.OrderForwarder
}

// NewOrderService creates a new OrderService.
func NewOrderService(forwarder port.OrderForwarder) OrderService {
	return &orderService{forwarder: forwarder}
}

func (s *orderService) Forward(ctx context.Context, order *domain.CompletedOrder) error {
	if order.OrderID == "" {
		return domain.Reject(domain.CodeFieldRequired, "order_id", "order_id is required")
	}
	if err := s.forwarder.ForwardOrder(ctx, order); err != nil {
		log.Printf("orderService: failed to forward order %s: %v", order.OrderID, err)
		return fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	log.Printf("orderService: order %s forwarded", order.OrderID)
	return nil
}
