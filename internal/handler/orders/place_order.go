// File: internal/handler/orders/place_order.go
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

// PlaceOrderHandler 為目前使用者建立訂單
// @Summary     下單
// @Description pizza_size 省略時為 SMALL，新訂單狀態為 PENDING
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body     dto.OrderRequest true "訂單內容"
// @Success     201  {object} dto.OrderResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/order [post]
func PlaceOrderHandler(db database.DB, pub events.Publisher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.OrderRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		o, err := placeOrder(c.Request().Context(), db, pub, middleware.Subject(c), req.Quantity, model.PizzaSize(req.PizzaSize))
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewOrderResponse(o))
	}
}
