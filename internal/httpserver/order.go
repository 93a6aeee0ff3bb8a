package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vmaksimov/storefront/internal/logging"
	"github.com/vmaksimov/storefront/internal/service/order"
	"github.com/vmaksimov/storefront/internal/service/token"
)

type OrderHTTP struct {
	Svc *order.Service
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	userID, err := token.UserID(c)
	if err != nil {
		l.Warn("place_order_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	if err := h.Svc.PlaceOrder(ctx, userID); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			l.Warn("place_order_error", "status", 401, "error", err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
		}
		l.Error("place_order_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Order placed and email will be sent!"})
}
