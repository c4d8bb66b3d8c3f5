package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// GoalSvcFacade exposes goal collection management to the handlers.
// Every mutation persists the full collection before returning.
type GoalSvcFacade interface {
	// ListGoals returns the user's goals in insertion order.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)

	// CreateGoal validates the input, assigns a fresh id, formats the
	// amounts and appends the goal to the collection.
	CreateGoal(ctx context.Context, userID string, req dto.SaveGoalRequest) (*domain.Goal, error)

	// UpdateGoal replaces the goal matching goalID in place. It returns
	// apperrors.ErrNotFound when no goal has that id.
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.SaveGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes the goal matching goalID. It returns
	// apperrors.ErrNotFound when no goal has that id.
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// Progress reports current/target as a percentage rounded to one
	// decimal. A goal whose target parses to zero reports 0.
	Progress(goal domain.Goal) float64

	// Summary derives the total/active/completed counts from a collection.
	Summary(goals []domain.Goal) domain.GoalSummary
}
