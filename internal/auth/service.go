package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/credstore"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// adminRole is the only role allowed to hold a session in this client.
const adminRole = "admin"

// Service implements the login and logout flows.
type Service struct {
	api       *api.Client
	endpoints *api.Endpoints
	store     credstore.Store
	session   *Session
	provider  IdentityProvider
	logger    *slog.Logger
}

// NewService creates the auth service.
func NewService(client *api.Client, endpoints *api.Endpoints, store credstore.Store, session *Session, provider IdentityProvider, logger *slog.Logger) *Service {
	return &Service{
		api:       client,
		endpoints: endpoints,
		store:     store,
		session:   session,
		provider:  provider,
		logger:    logger,
	}
}

// Login runs the identity provider's sign-in flow and exchanges the
// resulting ID token for the app's bearer token.
func (s *Service) Login(ctx context.Context) (*credstore.Profile, error) {
	if s.provider == nil {
		return nil, apperrors.InvalidInput("no identity provider configured; pass an ID token directly")
	}
	idToken, err := s.provider.SignIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity provider sign-in: %w", err)
	}
	return s.LoginWithIDToken(ctx, idToken)
}

// LoginWithIDToken exchanges a pre-obtained third-party ID token at the
// backend login endpoint. On success the bearer token and profile are
// persisted and the session becomes authenticated. A non-admin user is
// rejected: nothing is persisted and the full sign-out path runs, leaving
// the credential store empty.
func (s *Service) LoginWithIDToken(ctx context.Context, idToken string) (*credstore.Profile, error) {
	if idToken == "" {
		return nil, apperrors.InvalidInput("ID token is required")
	}

	env, err := s.api.Post(ctx, s.endpoints.Login(), map[string]string{"idToken": idToken})
	if err != nil {
		return nil, err
	}
	if !env.OK() {
		msg := env.Note()
		if msg == "" {
			msg = "Login failed"
		}
		return nil, apperrors.Unauthorized(msg)
	}

	var data struct {
		Token string            `json:"token"`
		User  credstore.Profile `json:"user"`
	}
	if err := env.DecodeData(&data); err != nil {
		return nil, apperrors.Internal(err)
	}
	if data.Token == "" {
		return nil, apperrors.Internal(fmt.Errorf("login response carried no token"))
	}

	if data.User.Role != adminRole {
		s.logger.WarnContext(ctx, "login rejected for non-admin user",
			slog.String("user_id", data.User.ID),
			slog.String("role", data.User.Role),
		)
		s.session.teardown(ctx, "Access Denied", "You are not an admin.")
		return nil, apperrors.Forbidden("you are not an admin")
	}

	if err := s.store.SetProfile(&data.User); err != nil {
		return nil, fmt.Errorf("persist profile: %w", err)
	}
	if err := s.store.SetToken(data.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	s.logger.InfoContext(ctx, "login successful",
		slog.String("user_id", data.User.ID),
	)
	return &data.User, nil
}

// Logout ends the session. Safe to call when already logged out.
func (s *Service) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

// Profile returns the cached user profile, which may be stale.
func (s *Service) Profile() (*credstore.Profile, error) {
	return s.store.Profile()
}

// TokenHint carries claims read from the stored bearer token WITHOUT
// signature verification. It is a display hint only; token validity is
// confirmed exclusively by the backend's responses.
type TokenHint struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenHint decodes the stored token's claims, if it happens to be a JWT.
func (s *Service) TokenHint() (*TokenHint, error) {
	token, err := s.store.Token()
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("stored token is not a JWT: %w", err)
	}

	hint := &TokenHint{}
	if sub, err := claims.GetSubject(); err == nil {
		hint.Subject = sub
	}
	if iss, err := claims.GetIssuer(); err == nil {
		hint.Issuer = iss
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		hint.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		hint.ExpiresAt = exp.Time
	}
	return hint, nil
}
