package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/validator"
)

// PostService covers feed post moderation.
type PostService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewPostService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *PostService {
	return &PostService{api: client, endpoints: endpoints, logger: logger}
}

// PostStatusInput moves a post through moderation. A rejection must carry a
// reason so the author learns why.
type PostStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Reason string `json:"reason,omitempty" validate:"required_if=Status rejected,max=500"`
}

// Feed returns the moderation feed.
func (s *PostService) Feed(ctx context.Context) ([]domain.Post, error) {
	return s.fetchPosts(ctx, s.endpoints.PostFeed(), nil)
}

// ByStatus returns posts in the given moderation state.
func (s *PostService) ByStatus(ctx context.Context, status string) ([]domain.Post, error) {
	if strings.TrimSpace(status) == "" {
		return nil, apperrors.InvalidInput("status is required")
	}
	query := url.Values{}
	query.Set("status", status)
	return s.fetchPosts(ctx, s.endpoints.PostsByStatus(), query)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("post id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.Post(id), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load post"); err != nil {
		return nil, err
	}
	var post domain.Post
	if err := env.DecodeData(&post); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &post, nil
}

// UpdateStatus moves a post to a new moderation state.
func (s *PostService) UpdateStatus(ctx context.Context, id string, input PostStatusInput) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidInput("post id is required")
	}
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Post(ctx, s.endpoints.UpdatePostStatus(id), input)
	if err != nil {
		return err
	}
	return check(env, "could not update post status")
}

func (s *PostService) fetchPosts(ctx context.Context, rawURL string, query url.Values) ([]domain.Post, error) {
	env, err := s.api.Get(ctx, rawURL, query)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load posts"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var posts []domain.Post
	if err := env.DecodeData(&posts); err != nil {
		return nil, apperrors.Internal(err)
	}
	return posts, nil
}
