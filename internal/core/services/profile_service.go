package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/middleware"
)

type profileService struct {
	repo portsrepo.ProfileRepository
}

// NewProfileService creates the profile snapshot service.
func NewProfileService(repo portsrepo.ProfileRepository) portssvc.ProfileSvcFacade {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.ProfileSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find profile snapshot", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, profile domain.ProfileSnapshot) (*domain.ProfileSnapshot, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	profile.ID = userID

	if err := s.repo.SaveProfile(ctx, userID, profile); err != nil {
		logger.Error("Failed to save profile snapshot", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Profile snapshot cached successfully")
	return &profile, nil
}
