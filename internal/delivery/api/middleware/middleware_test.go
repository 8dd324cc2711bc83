package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	servicemocks "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *servicemocks.MockIdentityProvider) {
	t.Helper()

	identity := servicemocks.NewMockIdentityProvider(t)
	cfg := &config.Config{Auth: &config.AuthConfig{LandingURL: "/welcome"}}

	return NewAuthMiddleware(AuthMiddlewareParams{Identity: identity, Config: cfg, Logger: discardLogger()}), identity
}

func okHandler(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, user.UserID)
}

func TestAuthenticate_BearerToken(t *testing.T) {
	m, identity := newAuthMiddleware(t)
	identity.EXPECT().CurrentUser(mock.Anything, "tok-1").Return(&entity.Identity{UserID: "user_1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-1")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user_1", rec.Body.String())
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	m, identity := newAuthMiddleware(t)
	identity.EXPECT().CurrentUser(mock.Anything, "cookie-tok").Return(&entity.Identity{UserID: "user_2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, "user_2", rec.Body.String())
}

func TestAuthenticate_AnonymousRedirectsToLanding(t *testing.T) {
	m, identity := newAuthMiddleware(t)
	identity.EXPECT().CurrentUser(mock.Anything, "").Return(nil, domainerrors.ErrUnauthorized)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/welcome", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthenticate_ProviderMisconfigured(t *testing.T) {
	m, identity := newAuthMiddleware(t)
	identity.EXPECT().CurrentUser(mock.Anything, "tok").Return(nil, domainerrors.ErrConfiguration.WithDetails("no credentials"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.GreaterOrEqual(t, rec.Code, http.StatusInternalServerError)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *entity.Identity
		wantCode int
	}{
		{name: "admin", identity: &entity.Identity{UserID: "admin", IsAdmin: true}, wantCode: http.StatusOK},
		{name: "customer", identity: &entity.Identity{UserID: "user_1"}, wantCode: http.StatusSeeOther},
		{name: "anonymous", wantCode: http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newAuthMiddleware(t)

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/products", nil), rec)
			if tt.identity != nil {
				deliverycontext.SetIdentity(c, tt.identity)
			}

			require.NoError(t, m.RequireAdmin(okHandler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErrCode string
		wantMessage string
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrProductNotFound, "load product"),
			wantCode:    http.StatusNotFound,
			wantErrCode: "PRODUCT_NOT_FOUND",
			wantMessage: "Product Not Found",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantCode:    http.StatusMethodNotAllowed,
			wantErrCode: "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("db exploded"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
					Details any    `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErrCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Nil(t, body.Error.Details)
		})
	}
}
