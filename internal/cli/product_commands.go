package cli

import (
	"context"
	"flag"

	"github.com/Almaash/community-app-admin/internal/service"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

func (a *App) cmdProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return subcommandErr("products", "list", "get", "by-user", "add", "update", "approve", "reject")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		products, err := a.products.List(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(products)
	case "get":
		id, err := a.parseID("products get", rest, "product id")
		if err != nil {
			return err
		}
		product, err := a.products.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(product)
	case "by-user":
		id, err := a.parseID("products by-user", rest, "user id")
		if err != nil {
			return err
		}
		products, err := a.products.ApprovedByUser(ctx, id)
		if err != nil {
			return err
		}
		return a.printJSON(products)
	case "add":
		fs := flag.NewFlagSet("products add", flag.ContinueOnError)
		fs.SetOutput(a.out)
		name := fs.String("name", "", "product name")
		description := fs.String("description", "", "product description")
		price := fs.Float64("price", 0, "product price")
		var images stringList
		fs.Var(&images, "image", "path to a product image, repeatable")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		input := service.ProductInput{Name: *name, Description: *description, Price: *price}
		for _, path := range images {
			upload, closeUpload, err := openUpload(path)
			if err != nil {
				return err
			}
			defer closeUpload()
			input.Images = append(input.Images, upload)
		}
		if err := a.products.Add(ctx, input); err != nil {
			return err
		}
		a.printf("product submitted\n")
		return nil
	case "update":
		fs := flag.NewFlagSet("products update", flag.ContinueOnError)
		fs.SetOutput(a.out)
		id := fs.String("id", "", "product id")
		name := fs.String("name", "", "new name")
		description := fs.String("description", "", "new description")
		price := fs.Float64("price", 0, "new price")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		input := service.ProductUpdateInput{Name: *name, Description: *description, Price: *price}
		if err := a.products.Update(ctx, *id, input); err != nil {
			return err
		}
		a.printf("product updated\n")
		return nil
	case "approve":
		id, err := a.parseID("products approve", rest, "product id")
		if err != nil {
			return err
		}
		if err := a.products.Approve(ctx, id); err != nil {
			return err
		}
		a.printf("product approved\n")
		return nil
	case "reject":
		fs := flag.NewFlagSet("products reject", flag.ContinueOnError)
		fs.SetOutput(a.out)
		id := fs.String("id", "", "product id")
		remarks := fs.String("remarks", "", "reason shown to the owner")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.products.Reject(ctx, *id, *remarks); err != nil {
			return err
		}
		a.printf("product rejected\n")
		return nil
	default:
		return apperrors.InvalidInput("unknown products subcommand: " + sub)
	}
}
