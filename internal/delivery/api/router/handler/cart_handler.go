package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// CartMutationResponse reports a cart change together with the recomputed cart.
type CartMutationResponse struct {
	Message string       `json:"message"`
	Cart    *entity.Cart `json:"cart"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), user.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// CountItems handles GET /api/v1/cart/count
func (h *CartHandler) CountItems(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.cartUC.CountItems(c.Request().Context(), user.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), user.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartMutationResponse{Message: "Item added to cart", Cart: cart})
}

// UpdateItem handles PUT /api/v1/cart/items/:id
func (h *CartHandler) UpdateItem(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCartItemNotFound)
	}

	var input usecase.SetCartItemQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}

	cart, err := h.cartUC.SetItemQuantity(c.Request().Context(), user.UserID, itemID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartMutationResponse{Message: "cart updated", Cart: cart})
}

// RemoveItem handles DELETE /api/v1/cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrCartItemNotFound)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), user.UserID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CartMutationResponse{Message: "Item removed from cart", Cart: cart})
}
