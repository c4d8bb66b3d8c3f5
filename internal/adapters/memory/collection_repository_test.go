package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/finsight-app/finsight_backend/internal/adapters/memory"
	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepository_GoalsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCollectionRepository()

	goals, err := repo.LoadGoals(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, goals)

	stored := []domain.Goal{
		{ID: "g1", Name: "Emergency Fund", Icon: domain.IconBriefcase, Target: "₹8,00,000", Current: "₹2,00,000"},
	}
	require.NoError(t, repo.ReplaceGoals(ctx, "user-1", stored))

	loaded, err := repo.LoadGoals(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestCollectionRepository_LiabilitiesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCollectionRepository()

	end := time.Date(2044, time.January, 15, 0, 0, 0, 0, time.UTC)
	stored := []domain.Liability{
		{
			ID:             "l1",
			Name:           "Home Loan",
			Amount:         decimal.NewFromInt(5000000),
			MonthlyPayment: decimal.NewFromInt(42000),
			InterestRate:   decimal.NewFromFloat(8.5),
			Category:       domain.CategoryMortgage,
			StartDate:      time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			EndDate:        &end,
			IsSecured:      true,
		},
	}
	require.NoError(t, repo.ReplaceLiabilities(ctx, "user-1", stored))

	loaded, err := repo.LoadLiabilities(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Home Loan", loaded[0].Name)
	assert.True(t, loaded[0].Amount.Equal(decimal.NewFromInt(5000000)))
	require.NotNil(t, loaded[0].EndDate)
	assert.True(t, loaded[0].EndDate.Equal(end))
}

func TestCollectionRepository_ProfileNotFound(t *testing.T) {
	repo := memory.NewCollectionRepository()

	_, err := repo.FindProfile(context.Background(), "nobody")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCollectionRepository_ProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCollectionRepository()

	snapshot := domain.ProfileSnapshot{ID: "user-1", FirstName: "Asha", PrimaryEmailAddress: "asha@example.com"}
	require.NoError(t, repo.SaveProfile(ctx, "user-1", snapshot))

	loaded, err := repo.FindProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, *loaded)
}

func TestCollectionRepository_UsersIsolated(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCollectionRepository()

	require.NoError(t, repo.ReplaceGoals(ctx, "user-1", []domain.Goal{{ID: "g1", Name: "Mine"}}))

	other, err := repo.LoadGoals(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

// End-to-end through the service layer: a created goal survives the write
// and comes back with progress intact.
func TestGoalPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCollectionRepository()
	service := services.NewGoalService(repo)

	created, err := service.CreateGoal(ctx, "user-1", dto.SaveGoalRequest{
		Name:    "Emergency Fund",
		Target:  "800000",
		Current: "200000",
	})
	require.NoError(t, err)

	goals, err := service.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, created.ID, goals[0].ID)
	assert.Equal(t, "₹8,00,000", goals[0].Target)
	assert.Equal(t, 25.0, service.Progress(goals[0]))

	updated, err := service.UpdateGoal(ctx, "user-1", created.ID, dto.SaveGoalRequest{
		Name:    "Emergency Fund",
		Target:  "800000",
		Current: "800000",
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, service.Progress(*updated))

	summary := service.Summary(mustList(t, service, "user-1"))
	assert.Equal(t, domain.GoalSummary{Total: 1, Completed: 1}, summary)

	require.NoError(t, service.DeleteGoal(ctx, "user-1", created.ID))
	assert.Empty(t, mustList(t, service, "user-1"))
}

func mustList(t *testing.T, service portsGoalLister, userID string) []domain.Goal {
	t.Helper()
	goals, err := service.ListGoals(context.Background(), userID)
	require.NoError(t, err)
	return goals
}

type portsGoalLister interface {
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}
