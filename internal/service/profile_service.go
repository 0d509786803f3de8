package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/recoleta-app/collector-api/internal/models"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

// profileClient is the slice of the collector repository this service needs.
type profileClient interface {
	FetchProfile(ctx context.Context, token string) (*models.CollectorProfile, error)
	UpdateProfile(ctx context.Context, collectorID int64, token string, profile models.CollectorProfile) (*models.CollectorProfile, error)
}

// ProfileService proxies collector account reads and updates to the upstream
// backend, which stays authoritative for the data.
type ProfileService struct {
	upstream profileClient
	logger   *zap.Logger
}

// NewProfileService constructs a profile service.
func NewProfileService(upstream profileClient, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{upstream: upstream, logger: logger}
}

// Me returns the authenticated collector's profile.
func (s *ProfileService) Me(ctx context.Context, token string) (*models.CollectorProfile, error) {
	return s.upstream.FetchProfile(ctx, token)
}

// Update validates and forwards profile changes. Collectors may only update
// their own profile.
func (s *ProfileService) Update(ctx context.Context, collectorID, targetID int64, token string, profile models.CollectorProfile) (*models.CollectorProfile, error) {
	if collectorID != targetID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "collectors may only update their own profile")
	}
	if strings.TrimSpace(profile.Name) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name is required")
	}
	if strings.TrimSpace(profile.Email) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "email is required")
	}
	return s.upstream.UpdateProfile(ctx, targetID, token, profile)
}
