package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vmaksimov/storefront/internal/logging"
	"github.com/vmaksimov/storefront/internal/service/cart"
	"github.com/vmaksimov/storefront/internal/service/token"
	"github.com/vmaksimov/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *cart.Service
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := token.UserID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 422, "error", err)
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "invalid body"})
	}

	item, err := h.Svc.AddOrSetItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrValidation):
			l.Warn("add_to_cart_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": err.Error()})
		case errors.Is(err, cart.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	l.Info("item added to cart", "user_id", userID, "product_id", req.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, echo.Map{"message": "Added to cart", "cart_item": item})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := token.UserID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	items, err := h.Svc.ListItems(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"data": items})
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	userID, err := token.UserID(c)
	if err != nil {
		l.Warn("update_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 422, "error", err)
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "invalid body"})
	}

	item, err := h.Svc.UpdateItemQuantity(ctx, userID, req.ID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrValidation):
			l.Warn("update_cart_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": err.Error()})
		case errors.Is(err, cart.ErrNotFound):
			l.Warn("update_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		case errors.Is(err, cart.ErrInsufficientStock):
			l.Warn("update_cart_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "Not enough stock"})
		default:
			l.Error("update_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	l.Info("cart updated", "user_id", userID, "item_id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, echo.Map{"message": "Cart updated", "cart_item": item})
}

func (h *CartHTTP) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, err := token.UserID(c)
	if err != nil {
		l.Warn("remove_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	var req transport.RemoveCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_cart_error", "status", 422, "error", err)
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "invalid body"})
	}

	if err := h.Svc.RemoveItem(ctx, userID, req.ID); err != nil {
		if errors.Is(err, cart.ErrValidation) {
			l.Warn("remove_cart_error", "status", 422, "error", err)
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": err.Error()})
		}
		l.Error("remove_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Cart item removed"})
}
