// File: internal/handler/auth/refresh.go
package auth

import (
	"net/http"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/middleware"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// RefreshHandler 以 refresh token 換發新的 access token
// @Summary     換發 access token
// @Description Authorization header 需帶 refresh token；帳號停用時 token 會被撤銷
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.TokenResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    BearerAuth
// @Router      /auth/refresh [get]
func RefreshHandler(db database.DB, cch cache.Cache, tc service.TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := middleware.BearerToken(c)
		if err != nil {
			return err
		}
		access, err := refresh(c.Request().Context(), db, cch, tc, token)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: access})
	}
}
