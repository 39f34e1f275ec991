package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func boolPtr(b bool) *bool { return &b }

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores bcrypt hash with safe defaults", func(t *testing.T) {
		m := newMemStore(t)
		u, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "alice@example.com", Password: "pw"})
		require.NoError(t, err)
		require.Equal(t, 1, u.ID)
		require.True(t, u.IsActive)
		require.False(t, u.IsStaff)
		require.NotEqual(t, "pw", u.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(m.users["alice"].PasswordHash), []byte("pw")))
	})

	t.Run("explicit flags", func(t *testing.T) {
		newMemStore(t)
		u, err := Signup(ctx, nil, SignupInput{
			Username: "bob", Email: "bob@example.com", Password: "pw",
			IsActive: boolPtr(false), IsStaff: boolPtr(true),
		})
		require.NoError(t, err)
		require.False(t, u.IsActive)
		require.True(t, u.IsStaff)
	})

	t.Run("duplicate email", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, true)
		_, err := Signup(ctx, nil, SignupInput{Username: "other", Email: "alice@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrConflict)
		require.EqualError(t, err, "user with the email already exists")
	})

	t.Run("duplicate username", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, true)
		_, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "new@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrConflict)
		require.EqualError(t, err, "user with the username already exists")
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		newMemStore(t)
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		_, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)
		_, err = Signup(ctx, nil, SignupInput{Username: "alice", Email: "b@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("validation", func(t *testing.T) {
		newMemStore(t)
		for _, in := range []SignupInput{
			{Email: "a@example.com", Password: "pw"},
			{Username: strings.Repeat("x", 26), Email: "a@example.com", Password: "pw"},
			{Username: "alice", Password: "pw"},
			{Username: "alice", Email: "a@example.com"},
			{Username: "alice", Email: "a@example.com", Password: strings.Repeat("x", 80)},
			{Username: "alice", Email: "a@example.com", Password: strings.Repeat("密", 25)},
		} {
			_, err := Signup(ctx, nil, in)
			require.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("multibyte username counts characters", func(t *testing.T) {
		newMemStore(t)
		u, err := Signup(ctx, nil, SignupInput{Username: strings.Repeat("披", 10), Email: "p@example.com", Password: "pw"})
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("披", 10), u.Username)

		_, err = Signup(ctx, nil, SignupInput{Username: strings.Repeat("披", 26), Email: "q@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("password at bcrypt limit", func(t *testing.T) {
		newMemStore(t)
		_, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "a@example.com", Password: strings.Repeat("x", 72)})
		require.NoError(t, err)
	})

	t.Run("store errors", func(t *testing.T) {
		m := newMemStore(t)
		m.err = errors.New("db down")
		_, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "a@example.com", Password: "pw"})
		require.EqualError(t, err, "db down")

		m.err = nil
		usernameExists = func(context.Context, database.DB, string) (bool, error) { return false, errors.New("db down") }
		_, err = Signup(ctx, nil, SignupInput{Username: "alice", Email: "a@example.com", Password: "pw"})
		require.EqualError(t, err, "db down")
	})

	t.Run("hash error", func(t *testing.T) {
		newMemStore(t)
		bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
		_, err := Signup(ctx, nil, SignupInput{Username: "alice", Email: "a@example.com", Password: "pw"})
		require.ErrorContains(t, err, "gen")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns two distinct valid tokens", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, true)
		c, data := memCache()

		pair, err := Login(ctx, nil, c, testTokens, "alice", "pw")
		require.NoError(t, err)
		require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

		access, err := VerifyAccessToken(testTokens, pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "alice", access.Subject)
		refresh, err := VerifyRefreshToken(testTokens, pair.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, "alice", refresh.Subject)
		require.Equal(t, "alice", data[refreshKey(refresh.ID)])
	})

	t.Run("wrong password", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, true)
		_, err := Login(ctx, nil, &cache.FakeCache{}, testTokens, "alice", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		newMemStore(t)
		_, err := Login(ctx, nil, &cache.FakeCache{}, testTokens, "ghost", "pw")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, false)
		_, err := Login(ctx, nil, &cache.FakeCache{}, testTokens, "alice", "pw")
		require.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("store error", func(t *testing.T) {
		m := newMemStore(t)
		m.err = errors.New("db down")
		_, err := Login(ctx, nil, &cache.FakeCache{}, testTokens, "alice", "pw")
		require.EqualError(t, err, "db down")
	})

	t.Run("token errors", func(t *testing.T) {
		m := newMemStore(t)
		m.addUser(t, "alice", false, true)
		_, err := Login(ctx, nil, &cache.FakeCache{}, TokenConfig{}, "alice", "pw")
		require.ErrorIs(t, err, errMissingSecret)

		c := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("", errors.New("redis down"))
			},
		}
		_, err = Login(ctx, nil, c, testTokens, "alice", "pw")
		require.ErrorContains(t, err, "redis down")
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	m := newMemStore(t)
	m.addUser(t, "alice", true, true)
	m.addUser(t, "idle", false, false)

	u, err := CurrentUser(ctx, nil, "alice")
	require.NoError(t, err)
	require.True(t, u.IsStaff)

	for _, subject := range []string{"", "ghost", "idle"} {
		_, err := CurrentUser(ctx, nil, subject)
		require.ErrorIs(t, err, ErrUnauthorized, subject)
	}

	m.err = errors.New("db down")
	_, err = CurrentUser(ctx, nil, "alice")
	require.EqualError(t, err, "db down")
}

