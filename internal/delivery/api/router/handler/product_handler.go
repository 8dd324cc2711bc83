package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	ReviewUC   usecase.ReviewUsecase
	FavoriteUC usecase.FavoriteUsecase
}

// ProductHandler serves the public catalog.
type ProductHandler struct {
	catalogUC  usecase.CatalogUsecase
	reviewUC   usecase.ReviewUsecase
	favoriteUC usecase.FavoriteUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC:  params.CatalogUC,
		reviewUC:   params.ReviewUC,
		favoriteUC: params.FavoriteUC,
	}
}

// ListProducts handles GET /api/v1/products?search=&sort=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var input usecase.SearchProductsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid search parameters")
	}

	products, err := h.catalogUC.Search(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ListFeatured handles GET /api/v1/products/featured
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.catalogUC.ListFeatured(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListReviews handles GET /api/v1/products/:id/reviews
func (h *ProductHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetRating handles GET /api/v1/products/:id/rating
func (h *ProductHandler) GetRating(c echo.Context) error {
	rating, err := h.reviewUC.ComputeRating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating)
}

// GetQRCode handles GET /api/v1/products/:id/qr and returns a PNG image
func (h *ProductHandler) GetQRCode(c echo.Context) error {
	png, err := h.catalogUC.ProductQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetFavorite handles GET /api/v1/products/:id/favorite for the signed-in caller
func (h *ProductHandler) GetFavorite(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favoriteID, err := h.favoriteUC.FindFavoriteID(c.Request().Context(), user.UserID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"favoriteId": favoriteID,
		"isFavorite": favoriteID != "",
	})
}
