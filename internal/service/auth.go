package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"
	"pizza-delivery/internal/model"
	"pizza-delivery/internal/store"
)

const (
	maxUsernameLen   = 25
	maxPasswordBytes = 72 // bcrypt 上限
)

// SignupInput 中 IsActive 未提供時預設 true，IsStaff 預設 false
type SignupInput struct {
	Username string
	Email    string
	Password string
	IsActive *bool
	IsStaff  *bool
}

func (in SignupInput) validate() error {
	switch {
	case strings.TrimSpace(in.Username) == "":
		return fmt.Errorf("%w: username is required", ErrValidation)
	case utf8.RuneCountInString(in.Username) > maxUsernameLen:
		return fmt.Errorf("%w: username must be at most %d characters", ErrValidation, maxUsernameLen)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case in.Password == "":
		return fmt.Errorf("%w: password is required", ErrValidation)
	case len(in.Password) > maxPasswordBytes:
		return fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, maxPasswordBytes)
	}
	return nil
}

// Signup 建立新使用者；email 或 username 已存在時回傳 ErrConflict
func Signup(ctx context.Context, db database.DB, in SignupInput) (*model.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	taken, err := emailExists(ctx, db, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("user with the email %w", ErrConflict)
	}
	taken, err = usernameExists(ctx, db, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("user with the username %w", ErrConflict)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("Signup: %w", err)
	}

	u := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		u.IsStaff = *in.IsStaff
	}

	created, err := createUser(ctx, db, u)
	if errors.Is(err, store.ErrDuplicate) {
		// 兩個請求同時通過預檢時由 unique constraint 擋下
		return nil, fmt.Errorf("user %w", ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login 驗證帳密並發出 access 與 refresh token
func Login(ctx context.Context, db database.DB, cch cache.Cache, tc TokenConfig, username, password string) (*TokenPair, error) {
	u, err := getUserByUsername(ctx, db, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := ComparePassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}

	access, err := IssueAccessToken(tc, u.Username)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	refresh, err := IssueRefreshToken(ctx, cch, tc, u.Username)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// CurrentUser 將 token subject 解析為啟用中的使用者，否則回傳 ErrUnauthorized
func CurrentUser(ctx context.Context, db database.DB, subject string) (*model.User, error) {
	if subject == "" {
		return nil, ErrUnauthorized
	}
	u, err := getUserByUsername(ctx, db, subject)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUnauthorized
	}
	return u, nil
}
