package auth

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the identity provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider selects the identity provider named by auth.provider
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		cfg = &config.AuthConfig{}
	}

	switch cfg.Provider {
	case "", constants.IdentityProviderJWT:
		params.Logger.Info("Using JWT identity provider", slog.String("issuer", cfg.Issuer))

		return NewJWTProvider(cfg.Secret, cfg.Issuer, cfg.AdminUserID)
	case constants.IdentityProviderFirebase:
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseProvider(params.Config.Firebase, cfg.AdminUserID, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
