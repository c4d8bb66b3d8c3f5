package dto

import (
	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// SaveGoalRequest defines the data needed to create a goal or fully replace
// an existing one. Amounts arrive as plain numeric strings ("800000"); the
// service formats them to the display currency convention.
type SaveGoalRequest struct {
	Name    string `json:"name" binding:"required"`
	Icon    string `json:"icon" binding:"omitempty,oneof=Briefcase Home GraduationCap Car Target"`
	Target  string `json:"target" binding:"required"`
	Current string `json:"current" binding:"required"`
}

// GoalResponse defines the data returned for a goal. Progress is a
// percentage rounded to one decimal; the bar width the UI renders from it
// should be clamped to [0,100].
type GoalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Target   string  `json:"target"`
	Current  string  `json:"current"`
	Progress float64 `json:"progress"`
}

// ToGoalResponse converts a domain.Goal to a GoalResponse DTO.
func ToGoalResponse(g *domain.Goal, progress float64) GoalResponse {
	return GoalResponse{
		ID:       g.ID,
		Name:     g.Name,
		Icon:     string(g.Icon),
		Target:   g.Target,
		Current:  g.Current,
		Progress: progress,
	}
}

// GoalSummaryResponse carries the aggregate counts for the dashboard header.
type GoalSummaryResponse struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// ListGoalsResponse wraps the goal collection and its summary.
type ListGoalsResponse struct {
	Goals   []GoalResponse      `json:"goals"`
	Summary GoalSummaryResponse `json:"summary"`
}
