package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/finsight-app/finsight_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalService struct {
	repo portsrepo.GoalRepository
}

// NewGoalService creates the goal service backed by the given repository.
func NewGoalService(repo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{repo: repo}
}

// ListGoals returns the user's goals in insertion order. A read failure
// degrades to an empty collection with a diagnostic, so a corrupted payload
// never takes the dashboard down.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	goals, err := s.repo.LoadGoals(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			logger.Warn("Failed to load goals, degrading to empty collection", slog.String("error", err.Error()))
			return []domain.Goal{}, nil
		}
		return nil, err
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	goal, err := goalFromRequest(req)
	if err != nil {
		return nil, err
	}
	goal.ID = uuid.NewString()

	goals, err := s.repo.LoadGoals(ctx, userID)
	if err != nil {
		logger.Error("Failed to load goals before create", slog.String("error", err.Error()))
		return nil, err
	}

	goals = append(goals, *goal)
	if err := s.repo.ReplaceGoals(ctx, userID, goals); err != nil {
		logger.Error("Failed to persist goals after create", slog.String("error", err.Error()), slog.String("goal_id", goal.ID))
		return nil, err
	}

	logger.Info("Goal created successfully in service", slog.String("goal_id", goal.ID))
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	updated, err := goalFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = goalID

	goals, err := s.repo.LoadGoals(ctx, userID)
	if err != nil {
		logger.Error("Failed to load goals before update", slog.String("error", err.Error()))
		return nil, err
	}

	idx := -1
	for i := range goals {
		if goals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	goals[idx] = *updated
	if err := s.repo.ReplaceGoals(ctx, userID, goals); err != nil {
		logger.Error("Failed to persist goals after update", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return nil, err
	}

	logger.Info("Goal updated successfully in service", slog.String("goal_id", goalID))
	return updated, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	goals, err := s.repo.LoadGoals(ctx, userID)
	if err != nil {
		logger.Error("Failed to load goals before delete", slog.String("error", err.Error()))
		return err
	}

	remaining := goals[:0:0]
	for _, g := range goals {
		if g.ID != goalID {
			remaining = append(remaining, g)
		}
	}
	if len(remaining) == len(goals) {
		return fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}

	if err := s.repo.ReplaceGoals(ctx, userID, remaining); err != nil {
		logger.Error("Failed to persist goals after delete", slog.String("error", err.Error()), slog.String("goal_id", goalID))
		return err
	}

	logger.Info("Goal deleted successfully in service", slog.String("goal_id", goalID))
	return nil
}

// Progress reports current/target as a percentage rounded to one decimal.
// Goals whose stored amounts no longer parse, or whose target is zero,
// report 0 rather than poisoning the dashboard with NaN.
func (s *goalService) Progress(goal domain.Goal) float64 {
	current, err := utils.ParseINR(goal.Current)
	if err != nil {
		return 0
	}
	target, err := utils.ParseINR(goal.Target)
	if err != nil || target.IsZero() {
		return 0
	}
	percent := current.Div(target).Mul(decimal.NewFromInt(100))
	return percent.Round(1).InexactFloat64()
}

// Summary derives the dashboard header counts. Completed means progress has
// reached 100%.
func (s *goalService) Summary(goals []domain.Goal) domain.GoalSummary {
	summary := domain.GoalSummary{Total: len(goals)}
	for _, g := range goals {
		if s.Progress(g) >= 100 {
			summary.Completed++
		} else {
			summary.Active++
		}
	}
	return summary
}

// goalFromRequest validates and normalizes the input before anything
// touches the collection. Amounts are stored display-formatted; a zero
// target is rejected here so progress stays well defined.
func goalFromRequest(req dto.SaveGoalRequest) (*domain.Goal, error) {
	icon := domain.DefaultGoalIcon
	if req.Icon != "" {
		parsed, err := domain.ParseGoalIcon(req.Icon)
		if err != nil {
			return nil, err
		}
		icon = parsed
	}

	target, err := utils.ParseINR(req.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: target amount: %v", apperrors.ErrValidation, err)
	}
	current, err := utils.ParseINR(req.Current)
	if err != nil {
		return nil, fmt.Errorf("%w: current amount: %v", apperrors.ErrValidation, err)
	}
	if current.IsNegative() {
		return nil, fmt.Errorf("%w: current amount must be non-negative", apperrors.ErrValidation)
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	return &domain.Goal{
		Name:    req.Name,
		Icon:    icon,
		Target:  utils.FormatINR(target),
		Current: utils.FormatINR(current),
	}, nil
}
