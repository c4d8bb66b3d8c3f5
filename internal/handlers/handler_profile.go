package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(profileService portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: profileService}
}

// registerProfileRoutes registers the profile snapshot routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.saveProfile)
	}
}

// getProfile godoc
// @Summary Get the cached profile snapshot
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	snapshot, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Profile not found"})
		case errors.Is(err, apperrors.ErrPersistence):
			logger.Error("Failed to load profile", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Storage unavailable"})
		default:
			logger.Error("Failed to get profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(snapshot))
}

// saveProfile godoc
// @Summary Replace the cached profile snapshot
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.SaveProfileRequest true "Profile snapshot"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /profile [put]
func (h *profileHandler) saveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	snapshot, err := h.profileService.SaveProfile(c.Request.Context(), userID, req.ToDomainProfileSnapshot(userID))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrPersistence):
			logger.Error("Failed to save profile", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Storage unavailable, your change was not saved"})
		default:
			logger.Error("Failed to save profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(snapshot))
}
