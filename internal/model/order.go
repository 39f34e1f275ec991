// File: internal/model/order.go
package model

import "time"

type PizzaSize string

const (
	PizzaSizeSmall      PizzaSize = "SMALL"
	PizzaSizeMedium     PizzaSize = "MEDIUM"
	PizzaSizeLarge      PizzaSize = "LARGE"
	PizzaSizeExtraLarge PizzaSize = "EXTRA-LARGE"
)

func (s PizzaSize) Valid() bool {
	switch s {
	case PizzaSizeSmall, PizzaSizeMedium, PizzaSizeLarge, PizzaSizeExtraLarge:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusInTransit OrderStatus = "IN-TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInTransit, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID          int         `db:"id" json:"id"`
	Quantity    int         `db:"quantity" json:"quantity"`
	PizzaSize   PizzaSize   `db:"pizza_size" json:"pizza_size"`
	OrderStatus OrderStatus `db:"order_status" json:"order_status"`
	UserID      *int        `db:"user_id" json:"user_id,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}
