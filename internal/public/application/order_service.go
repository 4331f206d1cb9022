package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// ErrOrderInvalid is returned when the booking form misses required fields.
var ErrOrderInvalid = errors.New("customer name and phone are required")

// OrderService handles booking intake from the public site.
type OrderService interface {
	Place(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// NewOrderService builds the booking intake service.
func NewOrderService(repo OrderRepository, notifier Notifier) OrderService {
	return &orderService{repo: repo, notifier: notifier}
}

type orderService struct {
	repo     OrderRepository
	notifier Notifier
}

// Place stores one booking with status "new" and fires a best-effort
// notification. Notification failure never reaches the customer.
func (s *orderService) Place(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if strings.TrimSpace(order.CustomerName) == "" || strings.TrimSpace(order.Phone) == "" {
		return nil, ErrOrderInvalid
	}

	order.Status = domain.OrderStatusNew
	order.CreatedAt = time.Now().UTC()
	if err := s.repo.Insert(ctx, &order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.notifier.Dispatch(formatOrderMessage(order))
	return &order, nil
}

func formatOrderMessage(order domain.Order) string {
	lines := []string{
		"<b>Нове замовлення</b> 🎉",
		fmt.Sprintf("Ім'я: <b>%s</b>", order.CustomerName),
		fmt.Sprintf("Телефон: <b>%s</b>", order.Phone),
	}
	if order.Date != "" {
		lines = append(lines, fmt.Sprintf("Дата: <b>%s</b>", order.Date))
	}
	if order.Time != "" {
		lines = append(lines, fmt.Sprintf("Час: <b>%s</b>", order.Time))
	}
	if len(order.Items) > 0 {
		lines = append(lines, "Послуги:")
		for i, item := range order.Items {
			line := fmt.Sprintf("%d. %s", i+1, item.ServiceName)
			if item.Quantity > 0 {
				line += fmt.Sprintf(" x%d", item.Quantity)
			}
			if item.Price != "" {
				line += fmt.Sprintf(" (%s)", item.Price)
			}
			lines = append(lines, line)
		}
	}
	if order.Notes != "" {
		lines = append(lines, "Коментар: "+order.Notes)
	}
	return strings.Join(lines, "\n")
}
