package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sipline/drink_shop/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
}

// Register wires the route table. The route strings are the contract the
// frontend depends on; keep them stable.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMw := middleware.NewSimpleAuth(d.JWTSecret)

	e.POST("/register", d.AuthHandler.Register)
	e.POST("/login", d.AuthHandler.Login)
	e.GET("/me", d.AuthHandler.Me, authMw.RequireAuth)

	e.GET("/drinks", d.CatalogHandler.GetDrinks)
	e.POST("/drinks", d.CatalogHandler.CreateDrink)
	e.GET("/drinks/search", d.CatalogHandler.SearchDrinks)

	e.GET("/cart", d.CartHandler.GetCart)
	e.POST("/cart", d.CartHandler.AddToCart)
	e.PUT("/cart/:id", d.CartHandler.UpdateQuantity)
	e.DELETE("/cart/:id", d.CartHandler.DeleteItem)
	e.DELETE("/cart/delete", d.CartHandler.ClearCart)
	e.GET("/cart/empty", d.CartHandler.IsEmpty)

	e.POST("/orders", d.OrderHandler.CreateOrder)
}
