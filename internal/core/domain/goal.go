package domain

import (
	"fmt"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
)

// GoalIcon identifies the display icon attached to a goal. It is a closed
// enumeration; unknown tags are rejected at the storage boundary instead of
// being defaulted silently.
type GoalIcon string

const (
	IconBriefcase     GoalIcon = "Briefcase"
	IconHome          GoalIcon = "Home"
	IconGraduationCap GoalIcon = "GraduationCap"
	IconCar           GoalIcon = "Car"
	IconTarget        GoalIcon = "Target"
)

// DefaultGoalIcon is applied when a goal is created without an icon.
const DefaultGoalIcon = IconBriefcase

var goalIcons = map[GoalIcon]struct{}{
	IconBriefcase:     {},
	IconHome:          {},
	IconGraduationCap: {},
	IconCar:           {},
	IconTarget:        {},
}

// ParseGoalIcon validates an icon tag read from input or storage.
func ParseGoalIcon(s string) (GoalIcon, error) {
	icon := GoalIcon(s)
	if _, ok := goalIcons[icon]; !ok {
		return "", fmt.Errorf("%w: unknown goal icon %q", apperrors.ErrValidation, s)
	}
	return icon, nil
}

// Goal represents a user-defined savings target.
// Target and Current hold the display-formatted INR amounts
// ("₹8,00,000"); arithmetic re-parses them. The JSON tags match the
// collection payload shape persisted for each user.
type Goal struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Icon    GoalIcon `json:"iconName"`
	Target  string   `json:"target"`
	Current string   `json:"current"`
}

// GoalSummary holds the aggregate counts shown on the goals dashboard header.
// A goal counts as completed once its progress reaches 100%.
type GoalSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}
