// File: internal/handler/auth/hello.go
package auth

import (
	"net/http"

	"pizza-delivery/internal/dto"

	"github.com/labstack/echo/v4"
)

// HelloHandler 驗證 access token 後回傳問候訊息
// @Summary     Auth greeting
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     401 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/ [get]
func HelloHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Hello World"})
	}
}
