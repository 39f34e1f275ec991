package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"
	"pizza-delivery/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	refreshKeyPrefix = "refresh:"
)

var errMissingSecret = errors.New("jwt secret not set")

// TokenConfig 由設定檔載入，Secret 用於 HS256 簽章
type TokenConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// CustomClaims 定義 JWT 負載內容；Subject 為使用者名稱
type CustomClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

var (
	timeNow    = time.Now
	newTokenID = uuid.NewString
)

func refreshKey(jti string) string { return refreshKeyPrefix + jti }

func signToken(tc TokenConfig, subject, tokenType string, ttl time.Duration) (string, *CustomClaims, error) {
	if len(tc.Secret) == 0 {
		return "", nil, errMissingSecret
	}
	now := timeNow()
	claims := &CustomClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// IssueAccessToken 產生短效 access token
func IssueAccessToken(tc TokenConfig, subject string) (string, error) {
	signed, _, err := signToken(tc, subject, TokenTypeAccess, tc.AccessTTL)
	return signed, err
}

// IssueRefreshToken 產生 refresh token，並將 jti 寫入 Redis 白名單 (TTL 與 token 相同)
func IssueRefreshToken(ctx context.Context, cch cache.Cache, tc TokenConfig, subject string) (string, error) {
	signed, claims, err := signToken(tc, subject, TokenTypeRefresh, tc.RefreshTTL)
	if err != nil {
		return "", err
	}
	if err := cch.Set(ctx, refreshKey(claims.ID), subject, tc.RefreshTTL).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return signed, nil
}

func parseToken(tc TokenConfig, tokenString, tokenType string) (*CustomClaims, error) {
	if len(tc.Secret) == 0 {
		return nil, errMissingSecret
	}
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return tc.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != tokenType || claims.Subject == "" {
		return nil, fmt.Errorf("expected %s token", tokenType)
	}
	return claims, nil
}

// VerifyAccessToken 驗證 access token；任何失敗皆回傳 ErrUnauthorized
func VerifyAccessToken(tc TokenConfig, tokenString string) (*CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrUnauthorized
	}
	claims, err := parseToken(tc, tokenString, TokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return claims, nil
}

// VerifyRefreshToken 只檢查簽章、期限與種類；白名單由 Refresh 檢查
func VerifyRefreshToken(tc TokenConfig, tokenString string) (*CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	claims, err := parseToken(tc, tokenString, TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// Refresh 驗證 refresh token 仍在白名單且屬於同一使用者，回傳新的 access token。
// 使用者已停用或不存在時，將該 jti 自白名單移除。
func Refresh(ctx context.Context, db database.DB, cch cache.Cache, tc TokenConfig, refreshToken string) (string, error) {
	claims, err := VerifyRefreshToken(tc, refreshToken)
	if err != nil {
		return "", err
	}

	key := refreshKey(claims.ID)
	owner, err := cch.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: refresh token revoked", ErrInvalidToken)
	}
	if err != nil {
		return "", fmt.Errorf("Refresh: %w", err)
	}
	if owner != claims.Subject {
		return "", fmt.Errorf("%w: subject mismatch", ErrInvalidToken)
	}

	u, err := getUserByUsername(ctx, db, claims.Subject)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("Refresh: %w", err)
	}
	if u == nil || !u.IsActive {
		if err := RevokeRefreshToken(ctx, cch, claims.ID); err != nil {
			return "", fmt.Errorf("Refresh: %w", err)
		}
		return "", fmt.Errorf("%w: account inactive", ErrInvalidToken)
	}

	return IssueAccessToken(tc, claims.Subject)
}

// RevokeRefreshToken 將 jti 自白名單移除
func RevokeRefreshToken(ctx context.Context, cch cache.Cache, jti string) error {
	return cch.Del(ctx, refreshKey(jti)).Err()
}
