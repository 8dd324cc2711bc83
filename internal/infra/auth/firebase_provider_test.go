package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	tokens map[string]*fbauth.Token
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbauth.Token, error) {
	token, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("ID token has invalid signature")
	}

	return token, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseProvider_CurrentUser(t *testing.T) {
	builds := 0
	verifier := &fakeVerifier{tokens: map[string]*fbauth.Token{
		"good": {UID: "uid-1", Claims: map[string]any{"email": "b@example.com", "name": "Bo", "picture": "https://img/bo.png"}},
		"boss": {UID: "admin-1", Claims: map[string]any{}},
	}}
	provider := newFirebaseProvider(func(context.Context) (tokenVerifier, error) {
		builds++

		return verifier, nil
	}, "admin-1", testLogger())

	got, err := provider.CurrentUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, "b@example.com", got.Email)
	assert.Equal(t, "Bo", got.Name)
	assert.Equal(t, "https://img/bo.png", got.ImageURL)
	assert.False(t, got.IsAdmin)

	got, err = provider.CurrentUser(context.Background(), "boss")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	_, err = provider.CurrentUser(context.Background(), "forged")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	assert.Equal(t, 1, builds, "client is built once and reused")
}

func TestFirebaseProvider_LazyClientFailure(t *testing.T) {
	attempts := 0
	provider := newFirebaseProvider(func(context.Context) (tokenVerifier, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("credentials not found")
		}

		return &fakeVerifier{tokens: map[string]*fbauth.Token{"good": {UID: "uid-1"}}}, nil
	}, "", testLogger())

	_, err := provider.CurrentUser(context.Background(), "good")
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)

	got, err := provider.CurrentUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, 2, attempts)
}

func TestFirebaseProvider_MissingToken(t *testing.T) {
	provider := newFirebaseProvider(func(context.Context) (tokenVerifier, error) {
		t.Fatal("client must not be built for an empty token")

		return nil, nil
	}, "", testLogger())

	_, err := provider.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
