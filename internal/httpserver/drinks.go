package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sipline/drink_shop/internal/logging"
	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/service"
	"github.com/sipline/drink_shop/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetDrinks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_drinks")

	drinks, err := h.Svc.ListDrinks(ctx)
	if err != nil {
		l.Error("get_drinks_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, drinks)
}

func (h *CatalogHTTP) CreateDrink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_drink")

	var req transport.CreateDrinkRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_drink_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	drink := models.Drink{
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}
	if err := h.Svc.CreateDrink(ctx, &drink); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_drink_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_drink_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"id": drink.ID})
}

func (h *CatalogHTTP) SearchDrinks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_drinks")

	q := c.QueryParam("q")
	drinks, err := h.Svc.SearchDrinks(ctx, q)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "q is required")
		}
		l.Error("search_drinks_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, drinks)
}
