package cli

import (
	"context"
	"flag"

	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func (a *App) cmdEvents(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("events", "list", "upcoming", "completed", "get",
			"create", "register", "registrations", "verify", "delete")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		events, err := a.events.List(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(events)
	case "upcoming":
		events, err := a.events.Upcoming(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(events)
	case "completed":
		events, err := a.events.Completed(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(events)
	case "get":
		id, err := a.parseID("events get", rest, "event id")
		if err != nil {
			return err
		}
		event, err := a.events.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(event)
	case "create":
		fs := flag.NewFlagSet("events create", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "event name")
		date := fs.String("date", "", "event date, e.g. 2026-09-12")
		timeOfDay := fs.String("time", "", "event time, e.g. 18:00")
		venue := fs.String("venue", "", "venue")
		upi := fs.String("upi", "", "UPI id for payments")
		description := fs.String("description", "", "event description")
		banner := fs.String("banner", "", "path to a banner image")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		input := service.EventInput{
			Name:        *name,
			Date:        *date,
			Time:        *timeOfDay,
			Venue:       *venue,
			UpiID:       *upi,
			Description: *description,
		}
		if *banner != "" {
			upload, closeUpload, err := openUpload(*banner)
			if err != nil {
				return err
			}
			defer closeUpload()
			input.Banner = upload
		}
		if err := a.events.Create(ctx, input); err != nil {
			return err
		}
		a.printf("event created\n")
		return nil
	case "register":
		fs := flag.NewFlagSet("events register", flag.ContinueOnError)
		fs.SetOutput(a.out)
		eventID := fs.String("event", "", "event id")
		userID := fs.String("user", "", "user id")
		screenshot := fs.String("screenshot", "", "path to the payment screenshot")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *screenshot == "" {
			return apperrors.InvalidInput("--screenshot is required")
		}
		upload, closeUpload, err := openUpload(*screenshot)
		if err != nil {
			return err
		}
		defer closeUpload()
		input := service.EventRegistrationInput{EventID: *eventID, UserID: *userID, Screenshot: upload}
		if err := a.events.Register(ctx, input); err != nil {
			return err
		}
		a.printf("registration submitted\n")
		return nil
	case "registrations":
		id, err := a.parseID("events registrations", rest, "event id")
		if err != nil {
			return err
		}
		regs, err := a.events.Registrations(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(regs)
	case "verify":
		id, err := a.parseID("events verify", rest, "registration id")
		if err != nil {
			return err
		}
		if err := a.events.VerifyRegistration(ctx, id); err != nil {
			return err
		}
		a.printf("registration verified\n")
		return nil
	case "delete":
		id, err := a.parseID("events delete", rest, "event id")
		if err != nil {
			return err
		}
		if err := a.events.Delete(ctx, id); err != nil {
			return err
		}
		a.printf("event deleted\n")
		return nil
	default:
		return apperrors.InvalidInput("unknown events subcommand: " + sub)
	}
}
