// File: internal/handler/orders/delete_order.go
package orders

import (
	"net/http"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/events"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/middleware"

	"github.com/labstack/echo/v4"
)

// DeleteOrderHandler 刪除訂單（擁有者或 staff）
// @Summary     刪除訂單
// @Tags        orders
// @Param       id  path int true "訂單 ID"
// @Success     204
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order/delete/{id}/ [delete]
func DeleteOrderHandler(db database.DB, pub events.Publisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return badID(c)
		}
		if _, err := deleteOrder(c.Request().Context(), db, pub, middleware.Subject(c), id); err != nil {
			return handler.RespondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
