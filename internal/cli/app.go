// Package cli wires the admin client together and maps terminal commands
// onto the service layer. Commands never retry and never crash on a backend
// error; failures surface as notices and the next command starts clean.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/auth"
	"github.com/Almaash/community-app-admin/internal/config"
	"github.com/Almaash/community-app-admin/internal/credstore"
	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/httpclient"
)

// App holds the fully wired admin client.
type App struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger

	store   credstore.Store
	session *auth.Session

	auth      *auth.Service
	dashboard *service.DashboardService
	users     *service.UserService
	products  *service.ProductService
	events    *service.EventService
	posts     *service.PostService
	chat      *service.ChatService
	referrals *service.ReferralService
}

// NewApp wires configuration, credential store, session handling, the
// request pipeline and every service.
func NewApp(cfg *config.Config, out io.Writer, logger *slog.Logger) (*App, error) {
	store, err := credstore.NewFileStore(cfg.CredentialDir)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	notifier := NewConsoleNotifier(out)

	var provider auth.IdentityProvider
	if cfg.GoogleClientID != "" {
		provider = auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectPort, out, logger)
	}

	session := auth.NewSession(store, provider, notifier, logger)

	base := httpclient.New(httpclient.Config{
		Timeout:         time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		MaxConnsPerHost: httpclient.DefaultConfig().MaxConnsPerHost,
	})
	client := api.NewClient(base, store, session, logger)
	endpoints := api.NewEndpoints(cfg.APIOrigin)

	// The chat watch loop polls on a timer, so it alone goes through a
	// circuit breaker.
	breaker := httpclient.NewCircuitBreakerClient(base, httpclient.DefaultCircuitBreakerConfig("chat-poll"), logger)
	pollClient := client.WithDoer(breaker)

	return &App{
		cfg:       cfg,
		out:       out,
		logger:    logger,
		store:     store,
		session:   session,
		auth:      auth.NewService(client, endpoints, store, session, provider, logger),
		dashboard: service.NewDashboardService(client, endpoints, logger),
		users:     service.NewUserService(client, endpoints, logger),
		products:  service.NewProductService(client, endpoints, logger),
		events:    service.NewEventService(client, endpoints, logger),
		posts:     service.NewPostService(client, endpoints, logger),
		chat:      service.NewChatService(client, pollClient, endpoints, logger),
		referrals: service.NewReferralService(client, endpoints, logger),
	}, nil
}

// Run dispatches a single command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return apperrors.InvalidInput("a command is required")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, rest)
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "dashboard":
		return a.cmdDashboard(ctx)
	case "users":
		return a.cmdUsers(ctx, rest)
	case "posts":
		return a.cmdPosts(ctx, rest)
	case "products":
		return a.cmdProducts(ctx, rest)
	case "events":
		return a.cmdEvents(ctx, rest)
	case "chat":
		return a.cmdChat(ctx, rest)
	case "referrals":
		return a.cmdReferrals(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return apperrors.InvalidInput("unknown command: " + cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: adminctl <command> [subcommand] [flags]

Commands:
  register    submit a membership application
  login       sign in with Google (or --id-token) and store the session
  logout      end the session
  whoami      show the cached profile and token claims
  dashboard   show pending-work counters
  users       list, inspect and moderate members
  posts       moderate feed posts
  products    list and moderate product listings
  events      manage events and registrations
  chat        read and send chat messages
  referrals   send, accept and reward referrals

Run "adminctl <command>" without a subcommand to list its subcommands.
`)
}

func subcommandErr(group string, subs ...string) error {
	msg := "usage: adminctl " + group + " <subcommand>"
	if len(subs) > 0 {
		msg += "; one of: "
		for i, s := range subs {
			if i > 0 {
				msg += ", "
			}
			msg += s
		}
	}
	return apperrors.InvalidInput(msg)
}
