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

// UserService covers member administration: listing, approval, bans,
// matrimonial access and fee-defaulter handling.
type UserService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewUserService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *UserService {
	return &UserService{api: client, endpoints: endpoints, logger: logger}
}

// memberRole is the role submitted with every self-service registration.
const memberRole = "business"

// RegisterInput is a membership application. It combines the personal
// details, the owner image and the membership-fee payment proof into one
// submission; the account stays pending until an admin approves it.
type RegisterInput struct {
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"max=100"`
	Username    string `validate:"required,max=100"`
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"required,max=20"`
	FatherName  string `validate:"max=100"`
	State       string `validate:"max=100"`
	City        string `validate:"max=100"`
	WardNumber  string `validate:"max=20"`
	Caste       string `validate:"max=100"`

	OwnerImage        Upload
	PaymentScreenshot Upload
}

// ApprovedUsersFilter narrows the approved-users listing. Zero values mean
// no filtering on that axis.
type ApprovedUsersFilter struct {
	Search   string
	Business string
}

// BusinessProfileInput updates the signed-in user's business profile.
type BusinessProfileInput struct {
	BusinessName string `json:"businessName" validate:"required"`
	Description  string `json:"description,omitempty" validate:"max=2000"`
	OwnerImage   string `json:"ownerImage,omitempty" validate:"omitempty,url"`
}

// Register submits a membership application. It runs before any session
// exists, so the request goes out anonymously.
func (s *UserService) Register(ctx context.Context, input RegisterInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if input.OwnerImage.Content == nil {
		return apperrors.InvalidInput("owner image is required")
	}
	if input.PaymentScreenshot.Content == nil {
		return apperrors.InvalidInput("payment screenshot is required")
	}

	form := new(api.Form).
		AddField("firstName", input.FirstName).
		AddField("lastName", input.LastName).
		AddField("username", input.Username).
		AddField("email", input.Email).
		AddField("phoneNumber", input.PhoneNumber).
		AddField("fatherName", input.FatherName).
		AddField("state", input.State).
		AddField("city", input.City).
		AddField("wardNumber", input.WardNumber).
		AddField("caste", input.Caste).
		AddField("role", memberRole).
		AddFile("ownerImage", input.OwnerImage.Filename, input.OwnerImage.Content).
		AddFile("paymentScreenshot", input.PaymentScreenshot.Filename, input.PaymentScreenshot.Content)

	env, err := s.api.PostForm(ctx, s.endpoints.Register(), form)
	if err != nil {
		return err
	}
	return check(env, "could not submit registration")
}

// List returns all members.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.fetchUsers(ctx, s.endpoints.Users(), nil)
}

// Get returns a single member by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	env, err := s.api.Get(ctx, s.endpoints.User(id), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load user"); err != nil {
		return nil, err
	}
	var user domain.User
	if err := env.DecodeData(&user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// Me returns the signed-in user's full record from the backend.
func (s *UserService) Me(ctx context.Context) (*domain.User, error) {
	env, err := s.api.Get(ctx, s.endpoints.Me(), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load profile"); err != nil {
		return nil, err
	}
	var user domain.User
	if err := env.DecodeData(&user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}

// ProfileCard returns the condensed card view of the signed-in user.
func (s *UserService) ProfileCard(ctx context.Context) (*domain.ProfileCard, error) {
	env, err := s.api.Get(ctx, s.endpoints.ProfileCard(), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load profile card"); err != nil {
		return nil, err
	}
	var card domain.ProfileCard
	if err := env.DecodeData(&card); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &card, nil
}

// UpdateBusinessProfile updates the signed-in user's business details.
func (s *UserService) UpdateBusinessProfile(ctx context.Context, input BusinessProfileInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Put(ctx, s.endpoints.BusinessProfile(), input)
	if err != nil {
		return err
	}
	return check(env, "could not update business profile")
}

// NewUsers returns members awaiting approval.
func (s *UserService) NewUsers(ctx context.Context) ([]domain.User, error) {
	return s.fetchUsers(ctx, s.endpoints.NewUsers(), nil)
}

// MatrimonialRequests returns members awaiting matrimonial access.
func (s *UserService) MatrimonialRequests(ctx context.Context) ([]domain.User, error) {
	return s.fetchUsers(ctx, s.endpoints.MatrimonialRequests(), nil)
}

// ApprovedUsers returns approved members, optionally filtered.
func (s *UserService) ApprovedUsers(ctx context.Context, filter ApprovedUsersFilter) ([]domain.User, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Business != "" {
		query.Set("business", filter.Business)
	}
	return s.fetchUsers(ctx, s.endpoints.ApprovedUsersFilter(), query)
}

// Approve marks a pending member as approved.
func (s *UserService) Approve(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.ApproveUser, "could not approve user")
}

// GrantMatrimonialAccess grants a member access to the matrimonial section.
func (s *UserService) GrantMatrimonialAccess(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.MatrimonialAccess, "could not grant matrimonial access")
}

// Ban blocks a member from the community.
func (s *UserService) Ban(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.BanUser, "could not ban user")
}

// Unban lifts a member's ban.
func (s *UserService) Unban(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.UnbanUser, "could not unban user")
}

// RequestFeeDefaulter files a fee-defaulter report for a member, attaching
// the payment screenshot as proof.
func (s *UserService) RequestFeeDefaulter(ctx context.Context, userID, comments string, screenshot Upload) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.InvalidInput("user id is required")
	}
	if screenshot.Content == nil {
		return apperrors.InvalidInput("payment screenshot is required")
	}
	form := new(api.Form).
		AddField("comments", comments).
		AddFile("screenshot", screenshot.Filename, screenshot.Content)
	env, err := s.api.PostForm(ctx, s.endpoints.DefaulterRequest(userID), form)
	if err != nil {
		return err
	}
	return check(env, "could not submit defaulter request")
}

// ToggleFeeDefaulter flips a member's fee-defaulter flag.
func (s *UserService) ToggleFeeDefaulter(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.DefaulterToggle, "could not toggle defaulter status")
}

// ApproveFeeDefaulter approves a pending fee-defaulter report.
func (s *UserService) ApproveFeeDefaulter(ctx context.Context, id string) error {
	return s.action(ctx, id, s.endpoints.DefaulterApprove, "could not approve defaulter request")
}

func (s *UserService) fetchUsers(ctx context.Context, rawURL string, query url.Values) ([]domain.User, error) {
	env, err := s.api.Get(ctx, rawURL, query)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load users"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var users []domain.User
	if err := env.DecodeData(&users); err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// action runs a bare id-addressed POST, the shape shared by approve, ban and
// the defaulter toggles.
func (s *UserService) action(ctx context.Context, id string, endpoint func(string) string, fallback string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.InvalidInput("user id is required")
	}
	env, err := s.api.Post(ctx, endpoint(id), nil)
	if err != nil {
		return err
	}
	return check(env, fallback)
}
