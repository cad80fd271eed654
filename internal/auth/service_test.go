package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/credstore"
	"github.com/Almaash/community-app-admin/pkg/httpclient"

	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

type fakeProvider struct {
	idToken     string
	signOutErr  error
	signOuts    int
	signInCalls int
}

func (f *fakeProvider) SignIn(ctx context.Context) (string, error) {
	f.signInCalls++
	return f.idToken, nil
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.signOuts++
	return f.signOutErr
}

type fakeNotifier struct {
	notices []string
}

func (f *fakeNotifier) Notify(title, message string) {
	f.notices = append(f.notices, title+": "+message)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store    *credstore.FileStore
	session  *Session
	service  *Service
	provider *fakeProvider
	notifier *fakeNotifier
}

func newFixture(t *testing.T, origin string) *fixture {
	t.Helper()

	store, err := credstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	provider := &fakeProvider{idToken: "google-id-token"}
	notifier := &fakeNotifier{}
	logger := testLogger()

	session := NewSession(store, provider, notifier, logger)
	client := api.NewClient(httpclient.New(httpclient.DefaultConfig()), store, session, logger)
	service := NewService(client, api.NewEndpoints(origin), store, session, provider, logger)

	return &fixture{store: store, session: session, service: service, provider: provider, notifier: notifier}
}

func loginBackend(t *testing.T, role string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/api/users/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"data":{"token":"abc123","user":{"id":"u1","role":"` + role + `"}}}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_SuccessPersistsCredentials(t *testing.T) {
	srv := loginBackend(t, "admin")
	fx := newFixture(t, srv.URL)

	profile, err := fx.service.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)

	token, err := fx.store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	cached, err := fx.store.Profile()
	require.NoError(t, err)
	assert.Equal(t, "u1", cached.ID)
	assert.Equal(t, "admin", cached.Role)

	assert.Equal(t, StateAuthenticated, fx.session.State())
}

func TestLogin_NonAdminRejected(t *testing.T) {
	srv := loginBackend(t, "member")
	fx := newFixture(t, srv.URL)

	_, err := fx.service.Login(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	// Nothing persisted, full sign-out path ran.
	_, err = fx.store.Token()
	assert.True(t, errors.Is(err, credstore.ErrNotFound))
	_, err = fx.store.Profile()
	assert.True(t, errors.Is(err, credstore.ErrNotFound))

	assert.Equal(t, 1, fx.provider.signOuts)
	assert.Equal(t, StateUnauthenticated, fx.session.State())
	require.NotEmpty(t, fx.notifier.notices)
	assert.Contains(t, fx.notifier.notices[0], "Access Denied")
}

func TestLogin_FailedEnvelope(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/users/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"success":false,"message":"unknown google account"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	fx := newFixture(t, srv.URL)
	_, err := fx.service.LoginWithIDToken(context.Background(), "bad-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown google account")
}

func TestLogin_EmptyIDToken(t *testing.T) {
	fx := newFixture(t, "http://localhost:0")
	_, err := fx.service.LoginWithIDToken(context.Background(), "")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestLogout_Idempotent(t *testing.T) {
	fx := newFixture(t, "http://localhost:0")

	// Already logged out: logout must still succeed and land
	// unauthenticated.
	require.NoError(t, fx.service.Logout(context.Background()))
	require.NoError(t, fx.service.Logout(context.Background()))
	assert.Equal(t, StateUnauthenticated, fx.session.State())
}

func TestLogout_SwallowsProviderFailure(t *testing.T) {
	fx := newFixture(t, "http://localhost:0")
	fx.provider.signOutErr = errors.New("provider unreachable")

	require.NoError(t, fx.store.SetToken("abc123"))
	require.NoError(t, fx.service.Logout(context.Background()))

	_, err := fx.store.Token()
	assert.True(t, errors.Is(err, credstore.ErrNotFound))
}

func TestUnauthorized_FullTeardown(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/dashboard/counts", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	fx := newFixture(t, srv.URL)
	require.NoError(t, fx.store.SetToken("stale"))
	require.NoError(t, fx.store.SetProfile(&credstore.Profile{ID: "u1", Role: "admin"}))

	client := api.NewClient(httpclient.New(httpclient.DefaultConfig()), fx.store, fx.session, testLogger())
	_, err := client.Get(context.Background(), srv.URL+"/api/dashboard/counts", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSessionExpired))

	// Regardless of which endpoint triggered it: store emptied, provider
	// signed out, user notified, state unauthenticated.
	_, tokenErr := fx.store.Token()
	assert.True(t, errors.Is(tokenErr, credstore.ErrNotFound))
	_, profileErr := fx.store.Profile()
	assert.True(t, errors.Is(profileErr, credstore.ErrNotFound))
	assert.Equal(t, 1, fx.provider.signOuts)
	require.NotEmpty(t, fx.notifier.notices)
	assert.Contains(t, fx.notifier.notices[0], "Session expired")
	assert.Equal(t, StateUnauthenticated, fx.session.State())
}

func TestTokenHint_UnverifiedClaims(t *testing.T) {
	fx := newFixture(t, "http://localhost:0")

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"iss": "community-app",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, fx.store.SetToken(raw))

	hint, err := fx.service.TokenHint()
	require.NoError(t, err)
	assert.Equal(t, "u1", hint.Subject)
	assert.Equal(t, "community-app", hint.Issuer)
}

func TestTokenHint_OpaqueToken(t *testing.T) {
	fx := newFixture(t, "http://localhost:0")
	require.NoError(t, fx.store.SetToken("not-a-jwt"))

	_, err := fx.service.TokenHint()
	assert.Error(t, err)
}
