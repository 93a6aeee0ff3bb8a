package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vmaksimov/storefront/internal/service/token"
)

type Deps struct {
	CartHandler    *CartHTTP
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	AuthHandler    *AuthHTTP
	SearchHandler  *SearchHTTP
	Tokens         *token.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/products", d.CatalogHandler.GetProducts)
	e.GET("/categories", d.CatalogHandler.GetCategories)
	if d.SearchHandler != nil {
		e.GET("/search", d.SearchHandler.Search)
	}

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)
	e.POST("/logout", d.AuthHandler.LogOut)

	cart := e.Group("/cart", d.Tokens.RequireAuth)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/update", d.CartHandler.UpdateCartItem)
	cart.POST("/remove", d.CartHandler.RemoveCartItem)

	e.POST("/place-order", d.OrderHandler.PlaceOrder, d.Tokens.RequireAuth)
}
