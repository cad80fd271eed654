package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Almaash/community-app-admin/pkg/httpclient"

	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// fakeTokens is an in-memory TokenSource.
type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Token() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

// fakeExpiry records session-expiry invocations.
type fakeExpiry struct {
	fired int
}

func (f *fakeExpiry) SessionExpired(ctx context.Context) { f.fired++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(tokens *fakeTokens, expiry *fakeExpiry) *Client {
	return NewClient(httpclient.New(httpclient.DefaultConfig()), tokens, expiry, testLogger())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	r := chi.NewRouter()
	r.Get("/api/dashboard/counts", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(&fakeTokens{token: "abc123"}, &fakeExpiry{})
	_, err := c.Get(context.Background(), srv.URL+"/api/dashboard/counts", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	r := chi.NewRouter()
	r.Get("/api/users/get", func(w http.ResponseWriter, req *http.Request) {
		_, hasAuth = req.Header["Authorization"]
		w.Write([]byte(`{"status":true,"data":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(&fakeTokens{err: errors.New("not found")}, &fakeExpiry{})
	_, err := c.Get(context.Background(), srv.URL+"/api/users/get", nil)
	require.NoError(t, err)

	assert.False(t, hasAuth, "anonymous requests must carry no Authorization header")
}

func TestClient_TokenRereadPerCall(t *testing.T) {
	var auths []string
	r := chi.NewRouter()
	r.Get("/api/users/me", func(w http.ResponseWriter, req *http.Request) {
		auths = append(auths, req.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	tokens := &fakeTokens{token: "first"}
	c := newTestClient(tokens, &fakeExpiry{})

	_, err := c.Get(context.Background(), srv.URL+"/api/users/me", nil)
	require.NoError(t, err)

	// A token cleared mid-session must never be resent.
	tokens.token = ""
	_, err = c.Get(context.Background(), srv.URL+"/api/users/me", nil)
	require.NoError(t, err)

	require.Len(t, auths, 2)
	assert.Equal(t, "Bearer first", auths[0])
	assert.Empty(t, auths[1])
}

func TestClient_UnauthorizedFiresExpiryHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/posts/feed", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	expiry := &fakeExpiry{}
	c := newTestClient(&fakeTokens{token: "stale"}, expiry)

	_, err := c.Get(context.Background(), srv.URL+"/api/posts/feed", nil)
	require.Error(t, err)

	assert.Equal(t, 1, expiry.fired, "401 must invoke the session-expiry handler exactly once")
	assert.True(t, errors.Is(err, apperrors.ErrSessionExpired))
}

func TestClient_NetworkErrorDoesNotTouchSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // simulate "no response received"

	expiry := &fakeExpiry{}
	c := newTestClient(&fakeTokens{token: "abc123"}, expiry)

	_, err := c.Get(context.Background(), srv.URL+"/api/users/get", nil)
	require.Error(t, err)

	// A network error is never treated like a 401.
	assert.True(t, apperrors.IsNetwork(err))
	assert.False(t, errors.Is(err, apperrors.ErrSessionExpired))
	assert.Equal(t, 0, expiry.fired)
}

func TestClient_ServerErrorMessagePassthrough(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/product/approve/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"product already approved"}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(&fakeTokens{token: "abc123"}, &fakeExpiry{})
	_, err := c.Post(context.Background(), srv.URL+"/api/product/approve/p1", nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "product already approved", appErr.Message)
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery string
	r := chi.NewRouter()
	r.Get("/api/users/approved-users/filter", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(&fakeTokens{token: "abc123"}, &fakeExpiry{})
	q := map[string][]string{"community": {"traders"}}
	_, err := c.Get(context.Background(), srv.URL+"/api/users/approved-users/filter", q)
	require.NoError(t, err)

	assert.Equal(t, "community=traders", gotQuery)
}

func TestClient_NilPayloadSendsEmptyObject(t *testing.T) {
	var gotBody []byte
	r := chi.NewRouter()
	r.Post("/api/users/approve/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotBody, _ = io.ReadAll(req.Body)
		w.Write([]byte(`{"success":true}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(&fakeTokens{token: "abc123"}, &fakeExpiry{})
	_, err := c.Post(context.Background(), srv.URL+"/api/users/approve/u1", nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(gotBody))
}

func TestClient_PostForm(t *testing.T) {
	var gotAuth, gotName, gotFile string
	r := chi.NewRouter()
	r.Post("/api/events/create", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		require.NoError(t, req.ParseMultipartForm(maxBodySize))
		gotName = req.FormValue("name")
		file, header, err := req.FormFile("banner")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		w.Write([]byte(`{"success":true,"data":{"id":"e1"}}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	form := (&Form{}).
		AddField("name", "Annual Meet").
		AddFile("banner", "banner.png", bytes.NewReader([]byte("png-bytes")))

	c := newTestClient(&fakeTokens{token: "abc123"}, &fakeExpiry{})
	env, err := c.PostForm(context.Background(), srv.URL+"/api/events/create", form)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "Annual Meet", gotName)
	assert.Equal(t, "banner.png", gotFile)
	assert.True(t, env.OK())
}

func TestEnvelope_SuccessAndStatusFlags(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
	}{
		{"success true", `{"success":true,"data":{}}`, true},
		{"success false", `{"success":false,"message":"nope"}`, false},
		{"status true", `{"status":true,"data":{}}`, true},
		{"status false", `{"status":false,"message":"nope"}`, false},
		{"no flag at all", `{"data":{}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := parseEnvelope([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.ok, env.OK())
		})
	}
}

func TestEnvelope_BareArrayBody(t *testing.T) {
	env, err := parseEnvelope([]byte(`[{"id":"u1"}]`))
	require.NoError(t, err)
	assert.True(t, env.OK())

	var users []map[string]string
	require.NoError(t, env.DecodeData(&users))
	assert.Len(t, users, 1)
}

func TestEnvelope_EmptyBody(t *testing.T) {
	env, err := parseEnvelope(nil)
	require.NoError(t, err)
	assert.True(t, env.OK())
	assert.Error(t, env.DecodeData(&struct{}{}))
}

func TestEnvelope_Note(t *testing.T) {
	env := &Envelope{Message: "from message", ErrText: "from error"}
	assert.Equal(t, "from message", env.Note())

	env = &Envelope{ErrText: "from error"}
	assert.Equal(t, "from error", env.Note())
}

func TestEnvelope_DataRoundTrip(t *testing.T) {
	env, err := parseEnvelope([]byte(`{"success":true,"data":{"token":"abc123","user":{"id":"u1","role":"admin"}}}`))
	require.NoError(t, err)

	var data struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, env.DecodeData(&data))
	assert.Equal(t, "abc123", data.Token)
	assert.Equal(t, "u1", data.User.ID)
	assert.Equal(t, "admin", data.User.Role)

	// Raw data survives re-encoding untouched.
	assert.True(t, json.Valid(env.Data))
}
