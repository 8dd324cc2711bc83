package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler manages the caller's reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// SubmitReview handles POST /api/v1/reviews. Author name and image default to the caller's profile.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if input.AuthorName == "" {
		input.AuthorName = user.Name
	}
	if input.AuthorImageURL == "" {
		input.AuthorImageURL = user.ImageURL
	}

	if _, err := h.reviewUC.SubmitReview(c.Request().Context(), user.UserID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "review submitted successfully")
}

// ListMyReviews handles GET /api/v1/reviews
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListUserReviews(c.Request().Context(), user.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// DeleteReview handles DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), user.UserID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "review deleted successfully")
}
