package service

import "errors"

// 呼叫端以 errors.Is 比對；訊息會直接出現在回應的 detail 中
var (
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUnauthorized       = errors.New("invalid token")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
)
