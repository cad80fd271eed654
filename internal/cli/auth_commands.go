package cli

import (
	"context"
	"flag"

	"github.com/Almaash/community-app-admin/internal/credstore"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	idToken := fs.String("id-token", "", "pre-obtained Google ID token, skips the browser flow")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var profile *credstore.Profile
	var err error
	if *idToken != "" {
		profile, err = a.auth.LoginWithIDToken(ctx, *idToken)
	} else {
		profile, err = a.auth.Login(ctx)
	}
	if err != nil {
		return err
	}

	a.printf("logged in as %s (%s)\n", profile.Name, profile.Email)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	return a.auth.Logout(ctx)
}

func (a *App) cmdWhoami(ctx context.Context) error {
	profile, err := a.auth.Profile()
	if err != nil {
		a.printf("not logged in\n")
		return nil
	}
	if err := a.printJSON(profile); err != nil {
		return err
	}

	// Claims are a display hint only; opaque tokens are fine.
	if hint, err := a.auth.TokenHint(); err == nil {
		a.printf("token subject: %s", hint.Subject)
		if !hint.ExpiresAt.IsZero() {
			a.printf(", expires %s", hint.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
		a.printf("\n")
	}
	return nil
}

func (a *App) cmdDashboard(ctx context.Context) error {
	counts, err := a.dashboard.Counts(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(counts)
}
