package cli

import (
	"context"
	"flag"

	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func (a *App) cmdPosts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("posts", "feed", "list", "get", "set-status")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "feed":
		posts, err := a.posts.Feed(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(posts)
	case "list":
		fs := flag.NewFlagSet("posts list", flag.ContinueOnError)
		fs.SetOutput(a.out)
		status := fs.String("status", "pending", "moderation status to list")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		posts, err := a.posts.ByStatus(ctx, *status)
		if err != nil {
			return err
		}
		return a.printJSON(posts)
	case "get":
		id, err := a.parseID("posts get", rest, "post id")
		if err != nil {
			return err
		}
		post, err := a.posts.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(post)
	case "set-status":
		fs := flag.NewFlagSet("posts set-status", flag.ContinueOnError)
		fs.SetOutput(a.out)
		id := fs.String("id", "", "post id")
		status := fs.String("status", "", "new status: pending, approved or rejected")
		reason := fs.String("reason", "", "reason shown to the author on rejection")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := service.PostStatusInput{Status: *status, Reason: *reason}
		if err := a.posts.UpdateStatus(ctx, *id, input); err != nil {
			return err
		}
		a.printf("post status updated\n")
		return nil
	default:
		return apperrors.InvalidInput("unknown posts subcommand: " + sub)
	}
}
