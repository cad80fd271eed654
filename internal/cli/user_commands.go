package cli

import (
	"context"
	"flag"

	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func (a *App) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("users",
			"list", "new", "matrimonial", "approved", "get", "me", "card",
			"update-business", "approve", "ban", "unban", "matrimonial-access",
			"defaulter-request", "defaulter-toggle", "defaulter-approve")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		users, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(users)
	case "new":
		users, err := a.users.NewUsers(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(users)
	case "matrimonial":
		users, err := a.users.MatrimonialRequests(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(users)
	case "approved":
		fs := flag.NewFlagSet("users approved", flag.ContinueOnError)
		fs.SetOutput(a.out)
		search := fs.String("search", "", "name search")
		business := fs.String("business", "", "business category filter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		users, err := a.users.ApprovedUsers(ctx, service.ApprovedUsersFilter{Search: *search, Business: *business})
		if err != nil {
			return err
		}
		return a.printJSON(users)
	case "get":
		id, err := a.parseID("users get", rest, "user id")
		if err != nil {
			return err
		}
		user, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(user)
	case "me":
		user, err := a.users.Me(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(user)
	case "card":
		card, err := a.users.ProfileCard(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(card)
	case "update-business":
		fs := flag.NewFlagSet("users update-business", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "business name")
		description := fs.String("description", "", "business description")
		ownerImage := fs.String("owner-image", "", "owner image URL")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := service.BusinessProfileInput{
			BusinessName: *name,
			Description:  *description,
			OwnerImage:   *ownerImage,
		}
		if err := a.users.UpdateBusinessProfile(ctx, input); err != nil {
			return err
		}
		a.printf("business profile updated\n")
		return nil
	case "approve":
		return a.userAction(ctx, "users approve", rest, a.users.Approve, "user approved")
	case "ban":
		return a.userAction(ctx, "users ban", rest, a.users.Ban, "user banned")
	case "unban":
		return a.userAction(ctx, "users unban", rest, a.users.Unban, "user unbanned")
	case "matrimonial-access":
		return a.userAction(ctx, "users matrimonial-access", rest, a.users.GrantMatrimonialAccess, "matrimonial access granted")
	case "defaulter-toggle":
		return a.userAction(ctx, "users defaulter-toggle", rest, a.users.ToggleFeeDefaulter, "defaulter status toggled")
	case "defaulter-approve":
		return a.userAction(ctx, "users defaulter-approve", rest, a.users.ApproveFeeDefaulter, "defaulter request approved")
	case "defaulter-request":
		fs := flag.NewFlagSet("users defaulter-request", flag.ContinueOnError)
		fs.SetOutput(a.out)
		id := fs.String("id", "", "user id")
		comments := fs.String("comments", "", "report comments")
		screenshot := fs.String("screenshot", "", "path to payment screenshot")
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
		if err := a.users.RequestFeeDefaulter(ctx, *id, *comments, upload); err != nil {
			return err
		}
		a.printf("defaulter request submitted\n")
		return nil
	default:
		return apperrors.InvalidInput("unknown users subcommand: " + sub)
	}
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	fatherName := fs.String("father-name", "", "father's name")
	state := fs.String("state", "", "state")
	city := fs.String("city", "", "city")
	ward := fs.String("ward", "", "ward number")
	caste := fs.String("caste", "", "caste")
	ownerImage := fs.String("owner-image", "", "path to the owner image")
	screenshot := fs.String("screenshot", "", "path to the membership-fee payment screenshot")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *ownerImage == "" {
		return apperrors.InvalidInput("--owner-image is required")
	}
	if *screenshot == "" {
		return apperrors.InvalidInput("--screenshot is required")
	}

	owner, closeOwner, err := openUpload(*ownerImage)
	if err != nil {
		return err
	}
	defer closeOwner()
	proof, closeProof, err := openUpload(*screenshot)
	if err != nil {
		return err
	}
	defer closeProof()

	input := service.RegisterInput{
		FirstName:         *firstName,
		LastName:          *lastName,
		Username:          *username,
		Email:             *email,
		PhoneNumber:       *phone,
		FatherName:        *fatherName,
		State:             *state,
		City:              *city,
		WardNumber:        *ward,
		Caste:             *caste,
		OwnerImage:        owner,
		PaymentScreenshot: proof,
	}
	if err := a.users.Register(ctx, input); err != nil {
		return err
	}
	a.printf("application submitted, pending approval\n")
	return nil
}

// parseID parses the single --id flag shared by most moderation subcommands.
func (a *App) parseID(name string, args []string, what string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.String("id", "", what)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *id, nil
}

func (a *App) userAction(ctx context.Context, name string, args []string, action func(context.Context, string) error, done string) error {
	id, err := a.parseID(name, args, "user id")
	if err != nil {
		return err
	}
	if err := action(ctx, id); err != nil {
		return err
	}
	a.printf("%s\n", done)
	return nil
}
