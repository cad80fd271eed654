package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
	"github.com/Almaash/community-app-admin/pkg/validator"
)

// ReferralService covers member-to-member referrals and point grants.
type ReferralService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewReferralService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *ReferralService {
	return &ReferralService{api: client, endpoints: endpoints, logger: logger}
}

// ReferralInput sends a referral to another member.
type ReferralInput struct {
	ToUserID string `json:"toUserId" validate:"required"`
	Note     string `json:"note,omitempty" validate:"max=1000"`
}

// PointsInput grants points to a member.
type PointsInput struct {
	UserID string `json:"userId" validate:"required"`
	Points int    `json:"points" validate:"gt=0"`
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// Send sends a referral.
func (s *ReferralService) Send(ctx context.Context, input ReferralInput) error {
	if err := validator.Validate(input); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Post(ctx, s.endpoints.SendReferral(), input)
	if err != nil {
		return err
	}
	return check(env, "could not send referral")
}

// Received returns the referrals sent to the signed-in user.
func (s *ReferralService) Received(ctx context.Context) ([]domain.Referral, error) {
	env, err := s.api.Get(ctx, s.endpoints.ReceivedReferrals(), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load referrals"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var referrals []domain.Referral
	if err := env.DecodeData(&referrals); err != nil {
		return nil, apperrors.Internal(err)
	}
	return referrals, nil
}

// Accept accepts a received referral.
func (s *ReferralService) Accept(ctx context.Context, referralID string) error {
	if strings.TrimSpace(referralID) == "" {
		return apperrors.InvalidInput("referral id is required")
	}
	payload := map[string]string{"referralId": referralID}
	env, err := s.api.Post(ctx, s.endpoints.AcceptReferral(), payload)
	if err != nil {
		return err
	}
	return check(env, "could not accept referral")
}

// GivePoints grants points to a member and returns the backend's record of
// the award, including the member's new total when the backend sends one.
func (s *ReferralService) GivePoints(ctx context.Context, input PointsInput) (*domain.PointsAward, error) {
	if err := validator.Validate(input); err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}
	env, err := s.api.Post(ctx, s.endpoints.GivePoints(), input)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not give points"); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	var award domain.PointsAward
	if err := env.DecodeData(&award); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &award, nil
}
