package repositories

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// GoalReader defines read operations for a user's goal collection.
type GoalReader interface {
	// LoadGoals retrieves the user's full goal collection in insertion
	// order. A user with no stored collection gets an empty slice.
	LoadGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for a user's goal collection.
type GoalWriter interface {
	// ReplaceGoals persists the full collection, overwriting whatever was
	// stored before. Every mutation writes the whole collection; there are
	// no incremental updates.
	ReplaceGoals(ctx context.Context, userID string, goals []domain.Goal) error
}

// GoalRepository combines all goal persistence operations.
type GoalRepository interface {
	GoalReader
	GoalWriter
}
