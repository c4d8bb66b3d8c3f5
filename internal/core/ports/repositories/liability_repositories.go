package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// LiabilityReader defines read operations for a user's liability collection.
type LiabilityReader interface {
	LoadLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for a user's liability collection.
type LiabilityWriter interface {
	// ReplaceLiabilities persists the full collection, overwriting the
	// previously stored payload.
	ReplaceLiabilities(ctx context.Context, userID string, liabilities []domain.Liability) error
}

// LiabilityRepository combines all liability persistence operations.
type LiabilityRepository interface {
	LiabilityReader
	LiabilityWriter
}
