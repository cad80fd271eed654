package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// GoogleProvider runs the Google OAuth2/OIDC authorization-code flow with a
// loopback redirect and hands back the raw ID token. The token is exchanged
// at the backend login endpoint and never persisted here.
type GoogleProvider struct {
	clientID     string
	clientSecret string
	redirectPort int
	out          io.Writer
	logger       *slog.Logger
}

// NewGoogleProvider creates the provider. out receives the authorization
// URL the user must open in a browser.
func NewGoogleProvider(clientID, clientSecret string, redirectPort int, out io.Writer, logger *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectPort: redirectPort,
		out:          out,
		logger:       logger,
	}
}

// SignIn runs the authorization-code flow: start a loopback listener, print
// the consent URL, wait for the redirect, exchange the code, and verify the
// ID token against Google's keys before returning it.
func (p *GoogleProvider) SignIn(ctx context.Context) (string, error) {
	if p.clientID == "" {
		return "", errors.New("google sign-in is not configured (GOOGLE_CLIENT_ID is empty)")
	}

	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return "", fmt.Errorf("discover google oidc configuration: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", p.redirectPort))
	if err != nil {
		return "", fmt.Errorf("start loopback listener: %w", err)
	}
	defer listener.Close()

	conf := oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.clientSecret,
		Endpoint:     provider.Endpoint(),
		RedirectURL:  fmt.Sprintf("http://127.0.0.1:%d/callback", p.redirectPort),
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}

	state := uuid.NewString()
	nonce := uuid.NewString()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			errCh <- errors.New("oauth state mismatch")
			return
		}
		if errMsg := r.URL.Query().Get("error"); errMsg != "" {
			http.Error(w, errMsg, http.StatusBadRequest)
			errCh <- fmt.Errorf("authorization denied: %s", errMsg)
			return
		}
		fmt.Fprintln(w, "Signed in. You can close this tab and return to the terminal.")
		codeCh <- r.URL.Query().Get("code")
	})

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer srv.Close()

	fmt.Fprintf(p.out, "Open this URL in your browser to sign in:\n\n  %s\n\n", conf.AuthCodeURL(state, oidc.Nonce(nonce)))

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", errors.New("google response carried no ID token")
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: p.clientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("verify ID token: %w", err)
	}
	if idToken.Nonce != nonce {
		return "", errors.New("ID token nonce mismatch")
	}

	p.logger.DebugContext(ctx, "google sign-in complete",
		slog.String("subject", idToken.Subject),
	)
	return rawIDToken, nil
}

// SignOut ends the provider-side session. Nothing provider-side is cached
// by this client, so there is nothing to revoke; the hook exists so the
// session teardown can stay uniform across providers.
func (p *GoogleProvider) SignOut(ctx context.Context) error {
	p.logger.DebugContext(ctx, "google sign-out: no cached provider session")
	return nil
}
