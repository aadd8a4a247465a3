package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"libgo-server/internal/model"
	"libgo-server/internal/repository"
)

type OrderService interface {
	// Place creates a new order in the pending, unpaid state.
	Place(ctx context.Context, order *model.Order) error
	ListByCustomer(ctx context.Context, customerEmail string) ([]*model.Order, error)
	// UpdateStatus drives the librarian/admin fulfillment workflow. It can
	// never flip the payment marker; that edge belongs to reconciliation.
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Place(ctx context.Context, order *model.Order) error {
	order.ID = uuid.NewString()
	order.Status = model.OrderStatusPending
	order.Payment = model.PaymentUnpaid
	order.CreatedAt = time.Now()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (s *orderServiceImpl) ListByCustomer(ctx context.Context, customerEmail string) ([]*model.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerEmail)
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	if status == "" {
		return 0, ErrInvalidStatus
	}

	modified, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}

	return modified, nil
}
