package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/pkg/httpclient"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, error) {
	return s.token, nil
}

type recordingExpiry struct {
	fired int
}

func (r *recordingExpiry) SessionExpired(context.Context) {
	r.fired++
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBackend(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, origin string) (*api.Client, *api.Endpoints) {
	t.Helper()
	client := api.NewClient(
		httpclient.New(httpclient.DefaultConfig()),
		staticTokens{token: "abc123"},
		&recordingExpiry{},
		testLogger(),
	)
	return client, api.NewEndpoints(origin)
}
