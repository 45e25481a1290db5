package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sipline/drink_shop/internal/tokens"
)

type SimpleAuth struct {
	JWTSecret []byte
}

func NewSimpleAuth(secret []byte) *SimpleAuth {
	return &SimpleAuth{JWTSecret: secret}
}

// RequireAuth expects the token as the raw Authorization header value, the
// way the frontend sends it (no Bearer prefix).
func (m *SimpleAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get("Authorization")
		if token == "" {
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}

		claims, err := tokens.ClaimsFromToken(token, m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusForbidden, "invalid token")
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)

		return next(c)
	}
}
