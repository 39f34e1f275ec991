// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Username/Password 驗證並回傳 access 與 refresh token
// @Summary     登入使用者
// @Description 驗證帳密，回傳短效 access token 與長效 refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.LoginRequest true "登入資料"
// @Success     200  {object} dto.LoginResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     401  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cch cache.Cache, tc service.TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		pair, err := login(c.Request().Context(), db, cch, tc, req.Username, req.Password)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}
