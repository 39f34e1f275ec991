// File: internal/dto/order_request.go
package dto

// PizzaSize 空白時為 SMALL
// swagger:model dto.OrderRequest
type OrderRequest struct {
	Quantity  int    `json:"quantity" form:"quantity" query:"quantity" validate:"required,gt=0" example:"2"`
	PizzaSize string `json:"pizza_size" form:"pizza_size" query:"pizza_size" validate:"omitempty,oneof=SMALL MEDIUM LARGE EXTRA-LARGE" example:"MEDIUM"`
}
