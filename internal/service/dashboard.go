package service

import (
	"context"
	"log/slog"

	"github.com/Almaash/community-app-admin/internal/api"
	"github.com/Almaash/community-app-admin/internal/domain"
	apperrors "github.com/Almaash/community-app-admin/pkg/errors"
)

// DashboardService loads the pending-work counters for the admin home.
type DashboardService struct {
	api       *api.Client
	endpoints *api.Endpoints
	logger    *slog.Logger
}

func NewDashboardService(client *api.Client, endpoints *api.Endpoints, logger *slog.Logger) *DashboardService {
	return &DashboardService{api: client, endpoints: endpoints, logger: logger}
}

// Counts fetches the current dashboard counters.
func (s *DashboardService) Counts(ctx context.Context) (*domain.DashboardCounts, error) {
	env, err := s.api.Get(ctx, s.endpoints.DashboardCounts(), nil)
	if err != nil {
		return nil, err
	}
	if err := check(env, "could not load dashboard counts"); err != nil {
		return nil, err
	}
	var counts domain.DashboardCounts
	if err := env.DecodeData(&counts); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &counts, nil
}
