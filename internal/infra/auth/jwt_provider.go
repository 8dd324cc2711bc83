// Package auth resolves storefront callers from bearer tokens.
package auth

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// IdentityClaims are the claims carried by storefront session tokens.
type IdentityClaims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// jwtProvider verifies HMAC-signed tokens issued by the external session service.
type jwtProvider struct {
	secret      []byte
	issuer      string
	adminUserID string
}

// NewJWTProvider is the constructor for jwtProvider.
func NewJWTProvider(secret, issuer, adminUserID string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtProvider{
		secret:      []byte(secret),
		issuer:      issuer,
		adminUserID: adminUserID,
	}, nil
}

// CurrentUser validates the token and maps its claims to an identity.
func (p *jwtProvider) CurrentUser(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("missing token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid token")
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token has no subject")
	}

	return &entity.Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		ImageURL: claims.Picture,
		IsAdmin:  isAdmin(claims.Subject, p.adminUserID),
	}, nil
}

// SignToken issues a token the provider accepts. Used by tests and local tooling;
// production tokens come from the external session service.
func SignToken(secret, issuer string, identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.ImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func isAdmin(userID, adminUserID string) bool {
	return adminUserID != "" && userID == adminUserID
}
