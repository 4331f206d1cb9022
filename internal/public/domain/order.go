package domain

import "time"

// OrderStatus tracks the admin-side lifecycle of a booking.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known status tag.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer booking request submitted through the public site.
// Date and Time are kept as the free-ish strings the booking form sends.
type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Date         string
	Time         string
	Notes        string
	Items        []OrderItem
	Status       OrderStatus
	CreatedAt    time.Time
}

// OrderItem is one requested service line of a booking.
type OrderItem struct {
	ServiceID   string
	ServiceName string
	Quantity    int
	Price       string
}
