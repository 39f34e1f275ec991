// File: internal/handler/respond.go
package handler

import (
	"errors"
	"net/http"

	"pizza-delivery/internal/dto"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// StatusFor 將 service 錯誤對應到 HTTP 狀態碼；未知錯誤為 500
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInactiveUser),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// RespondError 寫出 {"detail": ...}；未知錯誤原樣回傳，由 ErrorHandler 記錄並輸出 500
func RespondError(c echo.Context, err error) error {
	status := StatusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		return err
	case status == http.StatusUnauthorized && !errors.Is(err, service.ErrInvalidCredentials) && !errors.Is(err, service.ErrInactiveUser):
		return c.JSON(status, dto.HTTPError{Detail: "Invalid Token"})
	}
	return c.JSON(status, dto.HTTPError{Detail: err.Error()})
}

// BadRequest 用於 Bind/Validate 失敗
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Detail: msg})
}
