package application

import (
	"context"
	"fmt"
	"sort"

	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// OrderService lists bookings and moves them through their status lifecycle.
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// NewOrderService creates the admin order service.
func NewOrderService(repo publicapp.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

type orderService struct {
	repo publicapp.OrderRepository
}

func (s *orderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !domain.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
