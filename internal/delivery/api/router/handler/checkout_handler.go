package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CheckoutHandler opens and confirms payment sessions.
type CheckoutHandler struct {
	checkoutUC      usecase.CheckoutUsecase
	publicBaseURL   string
	successRedirect string
	logger          *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	successRedirect := "/orders"
	if params.Config.Checkout != nil && params.Config.Checkout.SuccessRedirect != "" {
		successRedirect = params.Config.Checkout.SuccessRedirect
	}

	return &CheckoutHandler{
		checkoutUC:      params.CheckoutUC,
		publicBaseURL:   params.Config.Site.PublicBaseURL,
		successRedirect: successRedirect,
		logger:          params.Logger,
	}
}

// CreatePayment handles POST /api/payment and returns the embedded checkout client secret
func (h *CheckoutHandler) CreatePayment(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.CreateCheckoutSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	input.Origin = h.origin(c)

	output, err := h.checkoutUC.CreateSession(c.Request().Context(), user.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Confirm handles GET /api/confirm?session_id=. The caller is always redirected;
// failures are reported through logs, events and metrics by the use case.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.checkoutUC.ConfirmSession(ctx, c.QueryParam("session_id"))
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	switch {
	case err != nil:
		logger.Error("Checkout confirmation failed", slog.Any("error", err))
	case result != nil && result.Failure != "":
		logger.Warn("Checkout confirmation not applied",
			slog.String("session_id", result.SessionID),
			slog.String("failure", result.Failure),
		)
	}

	return c.Redirect(http.StatusSeeOther, h.successRedirect)
}

// origin prefers the browser's Origin header, then the configured public URL, then the request host.
func (h *CheckoutHandler) origin(c echo.Context) string {
	if origin := c.Request().Header.Get(echo.HeaderOrigin); origin != "" {
		return strings.TrimRight(origin, "/")
	}
	if h.publicBaseURL != "" {
		return strings.TrimRight(h.publicBaseURL, "/")
	}

	return c.Scheme() + "://" + c.Request().Host
}
