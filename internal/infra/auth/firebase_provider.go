package auth

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type verifierFactory func(ctx context.Context) (tokenVerifier, error)

// firebaseProvider verifies Firebase ID tokens. The Firebase client is built on
// first use and reused; a failed build is retried on the next call.
type firebaseProvider struct {
	newVerifier verifierFactory
	adminUserID string
	logger      *slog.Logger

	mu       sync.Mutex
	verifier tokenVerifier
}

// NewFirebaseProvider creates the Firebase-backed identity provider
func NewFirebaseProvider(cfg *config.FirebaseConfig, adminUserID string, logger *slog.Logger) service.IdentityProvider {
	return newFirebaseProvider(firebaseVerifierFactory(cfg), adminUserID, logger)
}

func newFirebaseProvider(factory verifierFactory, adminUserID string, logger *slog.Logger) *firebaseProvider {
	return &firebaseProvider{
		newVerifier: factory,
		adminUserID: adminUserID,
		logger:      logger,
	}
}

func firebaseVerifierFactory(cfg *config.FirebaseConfig) verifierFactory {
	return func(ctx context.Context) (tokenVerifier, error) {
		var appConfig *firebase.Config
		var opts []option.ClientOption
		if cfg != nil {
			if cfg.ProjectID != "" {
				appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
			}
			if cfg.CredentialsPath != "" {
				opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
			}
		}

		app, err := firebase.NewApp(ctx, appConfig, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize Firebase app")
		}

		client, err := app.Auth(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get auth client")
		}

		return client, nil
	}
}

func (p *firebaseProvider) client(ctx context.Context) (tokenVerifier, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.verifier != nil {
		return p.verifier, nil
	}

	verifier, err := p.newVerifier(ctx)
	if err != nil {
		return nil, err
	}
	p.verifier = verifier

	return verifier, nil
}

// CurrentUser verifies a Firebase ID token.
func (p *firebaseProvider) CurrentUser(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("missing token")
	}

	verifier, err := p.client(ctx)
	if err != nil {
		p.logger.Error("Firebase auth unavailable", slog.Any("error", err))

		return nil, domainerrors.ErrConfiguration.WithDetails("firebase auth unavailable")
	}

	verified, err := verifier.VerifyIDToken(ctx, token)
	if err != nil {
		p.logger.Debug("Firebase token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid token")
	}

	return &entity.Identity{
		UserID:   verified.UID,
		Email:    stringClaim(verified.Claims, "email"),
		Name:     stringClaim(verified.Claims, "name"),
		ImageURL: stringClaim(verified.Claims, "picture"),
		IsAdmin:  isAdmin(verified.UID, p.adminUserID),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
