package models

import "time"

// Order statuses. New orders start as pending.
const (
	OrderStatusPending = "pending"
)

// OrderItem is one line of an order: a dish and how many of it.
type OrderItem struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

// Order is a past order of the owning user, kept for the history screen.
type Order struct {
	ID     string      `json:"id"`
	Email  string      `json:"email"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
	Status string      `json:"status"`

	PlacedAt time.Time `json:"placed_at"`
}
