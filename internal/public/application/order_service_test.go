package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// TestPlaceOrder_Success verifies a valid booking is stored with status
// "new" and announced over the relay.
func TestPlaceOrder_Success(t *testing.T) {
	repo := &fakeOrderRepo{}
	notifier := &recordingNotifier{}
	svc := NewOrderService(repo, notifier)

	placed, err := svc.Place(context.Background(), domain.Order{
		CustomerName: "Олена",
		Phone:        "+380670000000",
		Date:         "2026-09-01",
		Time:         "14:00",
		Items: []domain.OrderItem{
			{ServiceName: "Траса «Екстрим»", Quantity: 2, Price: "400 грн"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, domain.OrderStatusNew, placed.Status)
	assert.False(t, placed.CreatedAt.IsZero())

	require.Len(t, notifier.messages, 1)
	msg := notifier.messages[0]
	assert.Contains(t, msg, "<b>Нове замовлення</b> 🎉")
	assert.Contains(t, msg, "Ім'я: <b>Олена</b>")
	assert.Contains(t, msg, "1. Траса «Екстрим» x2 (400 грн)")
}

// TestPlaceOrder_MissingFields verifies bookings without a name or phone are
// rejected and nothing is stored.
func TestPlaceOrder_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		order domain.Order
	}{
		{"no name", domain.Order{Phone: "+380670000000"}},
		{"no phone", domain.Order{CustomerName: "Олена"}},
		{"blank name", domain.Order{CustomerName: "   ", Phone: "+380670000000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			notifier := &recordingNotifier{}
			svc := NewOrderService(repo, notifier)

			_, err := svc.Place(context.Background(), tt.order)
			require.ErrorIs(t, err, ErrOrderInvalid)
			assert.Empty(t, repo.orders)
			assert.Empty(t, notifier.messages)
		})
	}
}

// TestFormatOrderMessage_OptionalLines verifies optional fields only appear
// in the message when present.
func TestFormatOrderMessage_OptionalLines(t *testing.T) {
	msg := formatOrderMessage(domain.Order{CustomerName: "Іван", Phone: "123"})
	assert.NotContains(t, msg, "Дата:")
	assert.NotContains(t, msg, "Послуги:")
	assert.NotContains(t, msg, "Коментар:")

	msg = formatOrderMessage(domain.Order{
		CustomerName: "Іван",
		Phone:        "123",
		Notes:        "Будемо о 12",
		Items:        []domain.OrderItem{{ServiceName: "Квиток"}},
	})
	assert.Contains(t, msg, "Послуги:")
	assert.Contains(t, msg, "1. Квиток")
	assert.Contains(t, msg, "Коментар: Будемо о 12")
}
