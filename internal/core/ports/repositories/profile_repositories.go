package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// ProfileRepository persists the cached auth-provider profile snapshot.
type ProfileRepository interface {
	// FindProfile returns the stored snapshot, or apperrors.ErrNotFound if
	// the user has never cached one.
	FindProfile(ctx context.Context, userID string) (*domain.ProfileSnapshot, error)

	// SaveProfile stores the snapshot, replacing any previous one.
	SaveProfile(ctx context.Context, userID string, profile domain.ProfileSnapshot) error
}
