// File: internal/handler/auth/auth.go
package auth

import "pizza-delivery/internal/service"

// 測試可替換的 service 呼叫
var (
	signup  = service.Signup
	login   = service.Login
	refresh = service.Refresh
)
