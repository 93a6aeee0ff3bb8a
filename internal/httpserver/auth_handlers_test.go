package httpserver_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmaksimov/storefront/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/register", map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodPost, "/login", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	require.NotEmpty(t, resp["access_token"])
	require.NotEmpty(t, resp["refresh_token"])

	cookies := rec.Result().Cookies()
	var access *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "accessToken" {
			access = ck
		}
	}
	require.NotNil(t, access)

	rec = env.doJSON(http.MethodGet, "/cart", nil, access)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("Alice", "alice@example.com")

	rec := env.doJSON(http.MethodPost, "/register", map[string]any{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("Alice", "alice@example.com")

	rec := env.doJSON(http.MethodPost, "/login", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("Alice", "alice@example.com")

	rec := env.doJSON(http.MethodPost, "/login", map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var refresh *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "refreshToken" {
			refresh = ck
		}
	}
	require.NotNil(t, refresh)

	rec = env.doJSON(http.MethodPost, "/logout", nil, refresh)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.RefreshToken
	require.NoError(t, env.DB.Where("token = ?", refresh.Value).First(&stored).Error)
	require.True(t, stored.Revoked)
}
