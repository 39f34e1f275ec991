// File: internal/handler/orders/update_order.go
package orders

import (
	"net/http"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/events"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/middleware"
	"pizza-delivery/internal/model"

	"github.com/labstack/echo/v4"
)

// UpdateOrderHandler 覆寫訂單數量與尺寸（擁有者或 staff）
// @Summary     更新訂單
// @Description 同一路徑亦接受 GET 以相容舊客戶端
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id   path     int              true "訂單 ID"
// @Param       body body     dto.OrderRequest true "新的數量與尺寸"
// @Success     200  {object} dto.OrderResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order/update/{id} [put]
func UpdateOrderHandler(db database.DB, pub events.Publisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return badID(c)
		}
		var req dto.OrderRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		o, err := updateOrder(c.Request().Context(), db, pub, middleware.Subject(c), id, req.Quantity, model.PizzaSize(req.PizzaSize))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponse(o))
	}
}

// UpdateOrderStatusHandler 變更訂單狀態（僅限 staff）
// @Summary     更新訂單狀態
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "訂單 ID"
// @Param       body body     dto.OrderStatusRequest true "新狀態"
// @Success     200  {object} dto.OrderResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     403  {object} dto.HTTPError
// @Failure     404  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order/update/{id} [patch]
func UpdateOrderStatusHandler(db database.DB, pub events.Publisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return badID(c)
		}
		var req dto.OrderStatusRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		o, err := updateOrderStatus(c.Request().Context(), db, pub, middleware.Subject(c), id, model.OrderStatus(req.OrderStatus))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewOrderResponse(o))
	}
}
