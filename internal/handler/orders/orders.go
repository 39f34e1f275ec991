// File: internal/handler/orders/orders.go
package orders

import (
	"net/http"
	"strconv"

	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可替換的 service 呼叫
var (
	placeOrder              = service.PlaceOrder
	listAllOrders           = service.ListAllOrders
	getOrderByID            = service.GetOrderByID
	listCurrentUserOrders   = service.ListCurrentUserOrders
	getCurrentUserOrderByID = service.GetCurrentUserOrderByID
	updateOrder             = service.UpdateOrder
	updateOrderStatus       = service.UpdateOrderStatus
	deleteOrder             = service.DeleteOrder
)

// parseID 解析路徑上的 :id，必須為正整數
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: "invalid order id"})
}
