package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionCookieName is the cookie the external session service sets on the storefront domain.
const SessionCookieName = "__session"

// AuthMiddleware resolves the caller and redirects anonymous visitors to the landing page.
type AuthMiddleware struct {
	identity   service.IdentityProvider
	landingURL string
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identity service.IdentityProvider
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	landingURL := "/"
	if params.Config.Auth != nil && params.Config.Auth.LandingURL != "" {
		landingURL = params.Config.Auth.LandingURL
	}

	return &AuthMiddleware{
		identity:   params.Identity,
		landingURL: landingURL,
		logger:     params.Logger,
	}
}

// Authenticate requires a valid bearer token or session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		identity, err := m.identity.CurrentUser(ctx, bearerToken(c.Request()))
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return c.Redirect(http.StatusSeeOther, m.landingURL)
			}

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetIdentity(c, identity)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", identity.UserID))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireAdmin lets only the configured admin through. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok || !identity.IsAdmin {
			return c.Redirect(http.StatusSeeOther, m.landingURL)
		}

		return next(c)
	}
}

// CurrentUser returns the caller stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WithDetails("no identity in context")
	}

	return identity, nil
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
