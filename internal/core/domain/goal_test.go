package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoalIcon(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.GoalIcon
		wantErr bool
	}{
		{name: "briefcase", input: "Briefcase", want: domain.IconBriefcase},
		{name: "home", input: "Home", want: domain.IconHome},
		{name: "graduation cap", input: "GraduationCap", want: domain.IconGraduationCap},
		{name: "car", input: "Car", want: domain.IconCar},
		{name: "target", input: "Target", want: domain.IconTarget},
		{name: "unknown icon", input: "Rocket", wantErr: true},
		{name: "wrong case", input: "briefcase", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseGoalIcon(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoal_IconSerializesAsIconName(t *testing.T) {
	goal := domain.Goal{ID: "g1", Name: "House", Icon: domain.IconHome, Target: "₹50,00,000", Current: "₹0"}

	data, err := json.Marshal(goal)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Home", raw["iconName"])
	assert.NotContains(t, raw, "icon")
}
