// File: internal/dto/order_status_request.go
package dto

// swagger:model dto.OrderStatusRequest
type OrderStatusRequest struct {
	OrderStatus string `json:"order_status" form:"order_status" validate:"required,oneof=PENDING IN-TRANSIT DELIVERED" example:"IN-TRANSIT"`
}
