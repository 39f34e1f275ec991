// File: internal/handler/orders/list_orders.go
package orders

import (
	"net/http"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListOrdersHandler 列出所有訂單（僅限 staff）
// @Summary     列出所有訂單
// @Tags        orders
// @Produce     json
// @Success     200 {array}  dto.OrderResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order [get]
func ListOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listAllOrders(c.Request().Context(), db, middleware.Subject(c))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderListResponse(list))
	}
}

// GetOrderHandler 依 id 取得訂單（僅限 staff）
// @Summary     取得訂單
// @Tags        orders
// @Produce     json
// @Param       id  path     int true "訂單 ID"
// @Success     200 {object} dto.OrderResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order/{id} [get]
func GetOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return badID(c)
		}
		o, err := getOrderByID(c.Request().Context(), db, middleware.Subject(c), id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponse(o))
	}
}
