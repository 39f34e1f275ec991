package middleware

import (
	"net/http"
	"strings"

	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextClaimsKey = "claims"

var errInvalidToken = echo.NewHTTPError(http.StatusUnauthorized, "Invalid Token")

// BearerToken 從 Authorization header 取出 token
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errInvalidToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth 要求有效的 access token，並將 claims 存入 context
func RequireAuth(tc service.TokenConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				return err
			}
			claims, err := service.VerifyAccessToken(tc, token)
			if err != nil {
				return errInvalidToken
			}
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// Subject 回傳 RequireAuth 存入的使用者名稱；未驗證時為空字串
func Subject(c echo.Context) string {
	claims, ok := c.Get(ContextClaimsKey).(*service.CustomClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.Subject
}
