package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/validator"
)

// ProductService covers product listings and their moderation.
type ProductService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewProductService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *ProductService {
	return &ProductService{api: client, endpoints: endpoints, logger: logger}
}

// ProductInput creates a new product listing. Images go up as multipart
// file parts alongside the text fields.
type ProductInput struct {
	Name        string  `validate:"required,max=200"`
	Description string  `validate:"max=2000"`
	Price       float64 `validate:"gt=0"`
	Images      []Upload
}

// ProductUpdateInput edits an existing listing. Empty fields are left
// unchanged by the backend.
type ProductUpdateInput struct {
	Name        string  `json:"name,omitempty" validate:"max=200"`
	Description string  `json:"description,omitempty" validate:"max=2000"`
	Price       float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// List returns every product visible to the admin.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.fetchProducts(ctx, s.endpoints.AdminProducts())
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.Product(id), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load product"); err != nil {
		return nil, err
	}
	var product domain.Product
	if err := env.DecodeData(&product); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &product, nil
}

// ApprovedByUser returns a member's approved products.
func (s *ProductService) ApprovedByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	return s.fetchProducts(ctx, s.endpoints.ApprovedProductsByUser(userID))
}

// Add creates a new product listing.
func (s *ProductService) Add(ctx context.Context, input ProductInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	form := new(api.Form).
		AddField("name", input.Name).
		AddField("description", input.Description).
		AddField("price", strconv.FormatFloat(input.Price, 'f', -1, 64))
	for _, img := range input.Images {
		form.AddFile("images", img.Filename, img.Content)
	}
	env, err := s.api.PostForm(ctx, s.endpoints.AddProduct(), form)
	if err != nil {
		return err
	}
	return check(env, "could not add product")
}

// Update edits an existing product.
func (s *ProductService) Update(ctx context.Context, id string, input ProductUpdateInput) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Put(ctx, s.endpoints.UpdateProduct(id), input)
	if err != nil {
		return err
	}
	return check(env, "could not update product")
}

// Approve marks a pending product as approved.
func (s *ProductService) Approve(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidInput("product id is required")
	}
	env, err := s.api.Post(ctx, s.endpoints.ApproveProduct(id), nil)
	if err != nil {
		return err
	}
	return check(env, "could not approve product")
}

// Reject declines a pending product with a remark shown to the owner. The
// backend flags this response with `status` rather than `success`; the
// envelope normalization handles both.
func (s *ProductService) Reject(ctx context.Context, id, remarks string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if strings.TrimSpace(remarks) == "" {
		return apperrors.InvalidInput("reject remarks are required")
	}
	payload := map[string]string{"rejectRemarks": remarks}
	env, err := s.api.Post(ctx, s.endpoints.RejectProduct(id), payload)
	if err != nil {
		return err
	}
	return check(env, "could not reject product")
}

func (s *ProductService) fetchProducts(ctx context.Context, rawURL string) ([]domain.Product, error) {
	env, err := s.api.Get(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load products"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var products []domain.Product
	if err := env.DecodeData(&products); err != nil {
		return nil, apperrors.Internal(err)
	}
	return products, nil
}
