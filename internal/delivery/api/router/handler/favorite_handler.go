package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler manages the caller's favorites.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// ToggleFavorite handles POST /api/v1/favorites/toggle
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ToggleFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid favorite input")
	}

	message, err := h.favoriteUC.ToggleFavorite(c.Request().Context(), user.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, message)
}

// ListFavorites handles GET /api/v1/favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListUserFavorites(c.Request().Context(), user.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}
