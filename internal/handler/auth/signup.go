// File: internal/handler/auth/signup.go
package auth

import (
	"net/http"

	"pizza-delivery/internal/database"
	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 建立新帳號；email 或 username 重複時回傳 400
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     dto.SignupRequest true "註冊資料"
// @Success     201  {object} dto.UserResponse
// @Failure     400  {object} dto.HTTPError
// @Failure     500  {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		u, err := signup(c.Request().Context(), db, service.SignupInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			IsActive: req.IsActive,
			IsStaff:  req.IsStaff,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.NewUserResponse(u))
	}
}
