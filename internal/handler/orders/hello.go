// File: internal/handler/orders/hello.go
package orders

import (
	"net/http"

	"pizza-delivery/internal/dto"

	"github.com/labstack/echo/v4"
)

// HelloHandler 訂單路由的問候訊息
// @Summary     Order greeting
// @Tags        orders
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /order/ [get]
func HelloHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World"})
	}
}
