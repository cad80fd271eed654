// Package auth owns the client-side session: the two-state
// authenticated/unauthenticated machine, the forced teardown on an
// unauthorized response, and the login flow that exchanges a third-party
// identity token for the app's own bearer token.
package auth

import (
	"context"
	"log/slog"

	"github.com/Almaash/community-app-admin/internal/credstore"
)

// State is the session state. Presence of a token means the client
// believes it is authenticated; only the backend confirms validity.
type State string

const (
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// IdentityProvider is the third-party sign-in the user authenticates
// through. Its raw tokens are never persisted by this app.
type IdentityProvider interface {
	// SignIn runs the provider's flow and returns a raw ID token.
	SignIn(ctx context.Context) (string, error)

	// SignOut ends any provider-side session. Best effort: callers swallow
	// failures.
	SignOut(ctx context.Context) error
}

// Notifier presents a blocking notice to the user.
type Notifier interface {
	Notify(title, message string)
}

// Session is the session-expiry handler. It satisfies api.ExpiryHandler so
// the request pipeline can force the authenticated → unauthenticated
// transition on a 401, and it backs the user-initiated logout.
type Session struct {
	store    credstore.Store
	provider IdentityProvider
	notifier Notifier
	logger   *slog.Logger
}

// NewSession creates the session handler. provider may be nil when no
// third-party identity provider is configured.
func NewSession(store credstore.Store, provider IdentityProvider, notifier Notifier, logger *slog.Logger) *Session {
	return &Session{store: store, provider: provider, notifier: notifier, logger: logger}
}

// State reports the current session state from the credential store.
func (s *Session) State() State {
	if _, err := s.store.Token(); err != nil {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// SessionExpired runs the forced transition after the backend rejected a
// request as unauthorized.
func (s *Session) SessionExpired(ctx context.Context) {
	s.teardown(ctx, "Session expired", "Please log in again.")
}

// Logout runs the user-initiated transition. It is idempotent: logging out
// while already logged out succeeds and lands in the unauthenticated state.
func (s *Session) Logout(ctx context.Context) error {
	s.teardown(ctx, "Logged out", "You have been signed out.")
	return nil
}

// teardown performs the transition side effects synchronously and in order:
// clear the credential store, best-effort provider sign-out, notify the
// user. Callers land at the unauthenticated entry point afterwards.
func (s *Session) teardown(ctx context.Context, title, message string) {
	if err := s.store.Clear(); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear credential store",
			slog.String("error", err.Error()),
		)
	}

	if s.provider != nil {
		if err := s.provider.SignOut(ctx); err != nil {
			// Swallowed: provider sign-out failures are never surfaced.
			s.logger.WarnContext(ctx, "identity provider sign-out failed",
				slog.String("error", err.Error()),
			)
		}
	}

	if s.notifier != nil {
		s.notifier.Notify(title, message)
	}
}
