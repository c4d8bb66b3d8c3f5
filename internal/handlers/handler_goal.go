package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to financial goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// RegisterGoalRoutes registers routes related to goals.
func RegisterGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// listGoals godoc
// @Summary List goals
// @Description Retrieves the user's goal collection with progress and summary counts
// @Tags goals
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list goals"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list goals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list goals"})
		return
	}

	goalResponses := make([]dto.GoalResponse, len(goals))
	for i := range goals {
		goalResponses[i] = dto.ToGoalResponse(&goals[i], h.goalService.Progress(goals[i]))
	}
	summary := h.goalService.Summary(goals)

	c.JSON(http.StatusOK, dto.ListGoalsResponse{
		Goals: goalResponses,
		Summary: dto.GoalSummaryResponse{
			Total:     summary.Total,
			Active:    summary.Active,
			Completed: summary.Completed,
		},
	})
}

// createGoal godoc
// @Summary Create a new goal
// @Description Creates a goal for the logged-in user and persists the collection
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.SaveGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondGoalError(c, logger, err, "create")
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", goal.ID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal, h.goalService.Progress(*goal)))
}

// updateGoal godoc
// @Summary Update a goal
// @Description Replaces the goal's fields in place, keeping its id
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.SaveGoalRequest true "Goal details"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	var req dto.SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, goalID, req)
	if err != nil {
		respondGoalError(c, logger, err, "update")
		return
	}

	logger.Info("Goal updated successfully", slog.String("goal_id", goalID))
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal, h.goalService.Progress(*goal)))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Removes the goal from the collection and persists it
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, goalID); err != nil {
		respondGoalError(c, logger, err, "delete")
		return
	}

	logger.Info("Goal deleted successfully", slog.String("goal_id", goalID))
	c.Status(http.StatusNoContent)
}

func respondGoalError(c *gin.Context, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on goal "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Goal not found for " + op)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Goal not found"})
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error("Persistence failure on goal "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Storage unavailable, your change was not saved"})
	default:
		logger.Error("Failed to "+op+" goal in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + op + " goal"})
	}
}
