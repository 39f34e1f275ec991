// File: internal/handler/orders/my_orders.go
package orders

import (
	"net/http"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListMyOrdersHandler 列出目前使用者的訂單，依 id 排序
// @Summary     我的訂單
// @Tags        orders
// @Produce     json
// @Success     200 {array}  dto.OrderResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/user/order [get]
func ListMyOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listCurrentUserOrders(c.Request().Context(), db, middleware.Subject(c))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderListResponse(list))
	}
}

// GetMyOrderHandler 在目前使用者的訂單中依 id 查找
// @Summary     取得我的訂單
// @Tags        orders
// @Produce     json
// @Param       id  path     int true "訂單 ID"
// @Success     200 {object} dto.OrderResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/user/order/{id} [get]
func GetMyOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return badID(c)
		}
		o, err := getCurrentUserOrderByID(c.Request().Context(), db, middleware.Subject(c), id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponse(o))
	}
}
