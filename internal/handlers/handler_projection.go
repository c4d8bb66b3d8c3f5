package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/projection"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectionHandler serves the compound-growth calculator. The engine is
// pure, so there is no service behind it.
type projectionHandler struct{}

// registerProjectionRoutes registers the projection routes.
func registerProjectionRoutes(rg *gin.RouterGroup) {
	h := &projectionHandler{}

	projections := rg.Group("/projections")
	{
		projections.POST("", h.projectSeries)
		projections.GET("/default-assets", h.defaultAssets)
	}
}

// projectSeries godoc
// @Summary Project asset growth
// @Description Computes per-asset and total compound-growth series over the horizon
// @Tags projections
// @Accept json
// @Produce json
// @Param projection body dto.ProjectSeriesRequest true "Assets and horizon"
// @Success 200 {object} dto.ProjectSeriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /projections [post]
func (h *projectionHandler) projectSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ProjectSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProjectSeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	series, err := projection.ProjectSeries(req.ToDomainAssets(), req.HorizonYears)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to project series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to project series"})
		return
	}

	c.JSON(http.StatusOK, dto.ProjectSeriesResponse{Series: series})
}

// defaultAssets godoc
// @Summary Default demo portfolio
// @Description Returns the demo asset list the calculator starts a session with
// @Tags projections
// @Produce json
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /projections/default-assets [get]
func (h *projectionHandler) defaultAssets(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ListAssetsResponse{Assets: dto.ToListAssetResponse(projection.DefaultAssets())})
}
