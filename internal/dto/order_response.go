// File: internal/dto/order_response.go
package dto

import (
	"time"

	"pizza-delivery/internal/model"
)

// swagger:model dto.OrderResponse
type OrderResponse struct {
	ID          int       `json:"id" example:"1"`
	Quantity    int       `json:"quantity" example:"2"`
	PizzaSize   string    `json:"pizza_size" example:"MEDIUM"`
	OrderStatus string    `json:"order_status" example:"PENDING"`
	UserID      *int      `json:"user_id" example:"1"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Quantity:    o.Quantity,
		PizzaSize:   string(o.PizzaSize),
		OrderStatus: string(o.OrderStatus),
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func NewOrderListResponse(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
