package cli

import (
	"context"
	"flag"
	"time"

	"github.com/Almaash/community-app-admin/internal/domain"
	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func (a *App) cmdChat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("chat", "list", "messages", "send", "initiate", "watch")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		fs := flag.NewFlagSet("chat list", flag.ContinueOnError)
		fs.SetOutput(a.out)
		userID := fs.String("user", "", "user id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		chats, err := a.chat.UserChats(ctx, *userID)
		if err != nil {
			return err
		}
		return a.printJSON(chats)
	case "messages":
		fs := flag.NewFlagSet("chat messages", flag.ContinueOnError)
		fs.SetOutput(a.out)
		chatID := fs.String("chat", "", "chat id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		msgs, err := a.chat.Messages(ctx, *chatID)
		if err != nil {
			return err
		}
		return a.printJSON(msgs)
	case "send":
		fs := flag.NewFlagSet("chat send", flag.ContinueOnError)
		fs.SetOutput(a.out)
		chatID := fs.String("chat", "", "chat id")
		senderID := fs.String("sender", "", "sender user id")
		text := fs.String("text", "", "message text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := service.MessageInput{ChatID: *chatID, SenderID: *senderID, Text: *text}
		msg, err := a.chat.Send(ctx, input)
		if err != nil {
			return err
		}
		return a.printJSON(msg)
	case "initiate":
		fs := flag.NewFlagSet("chat initiate", flag.ContinueOnError)
		fs.SetOutput(a.out)
		u1 := fs.String("u1", "", "first user id")
		u2 := fs.String("u2", "", "second user id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		chat, err := a.chat.Initiate(ctx, service.InitiateInput{UserID1: *u1, UserID2: *u2})
		if err != nil {
			return err
		}
		return a.printJSON(chat)
	case "watch":
		fs := flag.NewFlagSet("chat watch", flag.ContinueOnError)
		fs.SetOutput(a.out)
		chatID := fs.String("chat", "", "chat id")
		interval := fs.Int("interval", a.cfg.ChatPollIntervalSeconds, "poll interval in seconds")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		a.printf("watching chat %s, interrupt to stop\n", *chatID)
		return a.chat.Watch(ctx, *chatID, time.Duration(*interval)*time.Second, func(msgs []domain.Message) {
			a.printf("-- %d message(s) --\n", len(msgs))
			for _, m := range msgs {
				a.printf("%s: %s\n", m.SenderID, m.Text)
			}
		})
	default:
		return apperrors.InvalidInput("unknown chat subcommand: " + sub)
	}
}

func (a *App) cmdReferrals(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("referrals", "send", "received", "accept", "give-points")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "send":
		fs := flag.NewFlagSet("referrals send", flag.ContinueOnError)
		fs.SetOutput(a.out)
		to := fs.String("to", "", "recipient user id")
		note := fs.String("note", "", "note to the recipient")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.referrals.Send(ctx, service.ReferralInput{ToUserID: *to, Note: *note}); err != nil {
			return err
		}
		a.printf("referral sent\n")
		return nil
	case "received":
		referrals, err := a.referrals.Received(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(referrals)
	case "accept":
		id, err := a.parseID("referrals accept", rest, "referral id")
		if err != nil {
			return err
		}
		if err := a.referrals.Accept(ctx, id); err != nil {
			return err
		}
		a.printf("referral accepted\n")
		return nil
	case "give-points":
		fs := flag.NewFlagSet("referrals give-points", flag.ContinueOnError)
		fs.SetOutput(a.out)
		userID := fs.String("user", "", "user id")
		points := fs.Int("points", 0, "points to grant")
		reason := fs.String("reason", "", "reason for the grant")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := service.PointsInput{UserID: *userID, Points: *points, Reason: *reason}
		award, err := a.referrals.GivePoints(ctx, input)
		if err != nil {
			return err
		}
		if award != nil {
			return a.printJSON(award)
		}
		a.printf("points granted\n")
		return nil
	default:
		return apperrors.InvalidInput("unknown referrals subcommand: " + sub)
	}
}
