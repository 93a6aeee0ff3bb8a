package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vmaksimov/storefront/internal/hash"
	"github.com/vmaksimov/storefront/internal/httpserver"
	"github.com/vmaksimov/storefront/internal/mail"
	"github.com/vmaksimov/storefront/internal/models"
	"github.com/vmaksimov/storefront/internal/repo"
	"github.com/vmaksimov/storefront/internal/service/cart"
	"github.com/vmaksimov/storefront/internal/service/catalog"
	"github.com/vmaksimov/storefront/internal/service/order"
	"github.com/vmaksimov/storefront/internal/service/token"
)

type fakeQueue struct {
	messages []mail.Message
	fail     bool
}

func (q *fakeQueue) Enqueue(ctx context.Context, msg mail.Message) error {
	if q.fail {
		return errors.New("broker unavailable")
	}
	q.messages = append(q.messages, msg)
	return nil
}

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Queue  *fakeQueue
	Tokens *token.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.RefreshToken{},
		&models.CartItem{},
	))

	store := &repo.GormRepo{DB: db}
	queue := &fakeQueue{}
	tokens := &token.Service{
		DB:            db,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
	}

	e := echo.New()
	e.HideBanner = true
	httpserver.Register(e, &httpserver.Deps{
		CartHandler:    &httpserver.CartHTTP{Svc: &cart.Service{Store: store, Products: store}},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalog.NewService(store)},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &order.Service{Cart: store, Users: store, Queue: queue}},
		AuthHandler:    &httpserver.AuthHTTP{DB: db, Tokens: tokens},
		Tokens:         tokens,
	})

	return &testEnv{T: t, E: e, DB: db, Queue: queue, Tokens: tokens}
}

func (env *testEnv) createUser(name, email string) models.User {
	env.T.Helper()
	pwHash, err := hash.HashPassword("password123")
	require.NoError(env.T, err)
	user := models.User{Name: name, Email: email, PasswordHash: pwHash, Role: "user"}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}

func (env *testEnv) accessCookie(user models.User) *http.Cookie {
	env.T.Helper()
	access, err := token.SignAccessToken(user.ID, user.Role, env.Tokens.JWTSecret)
	require.NoError(env.T, err)
	return token.CreateCookie("accessToken", access, "/", time.Now().Add(token.AccessTTL))
}

func (env *testEnv) createProduct(name string, price float64, stock uint) models.Product {
	env.T.Helper()
	p := models.Product{Name: name, Description: name, Price: price, Stock: stock}
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

func (env *testEnv) doJSON(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
