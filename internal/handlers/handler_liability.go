package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/finsight-app/finsight_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// liabilityHandler handles HTTP requests related to liabilities.
type liabilityHandler struct {
	liabilityService portssvc.LiabilitySvcFacade
}

func newLiabilityHandler(ls portssvc.LiabilitySvcFacade) *liabilityHandler {
	return &liabilityHandler{liabilityService: ls}
}

// registerLiabilityRoutes registers routes related to liabilities.
func registerLiabilityRoutes(rg *gin.RouterGroup, liabilityService portssvc.LiabilitySvcFacade) {
	h := newLiabilityHandler(liabilityService)

	liabilities := rg.Group("/liabilities")
	{
		liabilities.GET("", h.listLiabilities)
		liabilities.GET("/summary", h.getSummary)
		liabilities.POST("", h.createLiability)
		liabilities.PUT("/:id", h.updateLiability)
		liabilities.DELETE("/:id", h.deleteLiability)
	}
}

// listLiabilities godoc
// @Summary List liabilities
// @Description Retrieves the user's liabilities with derived totals
// @Tags liabilities
// @Produce json
// @Success 200 {object} dto.ListLiabilitiesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list liabilities"
// @Security BearerAuth
// @Router /liabilities [get]
func (h *liabilityHandler) listLiabilities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	liabilities, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list liabilities from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list liabilities"})
		return
	}

	now := time.Now()
	liabilityResponses := make([]dto.LiabilityResponse, len(liabilities))
	for i := range liabilities {
		liabilityResponses[i] = dto.ToLiabilityResponse(&liabilities[i], now)
	}

	totalAmount := h.liabilityService.TotalAmount(liabilities)
	totalMonthly := h.liabilityService.TotalMonthlyPayment(liabilities)

	c.JSON(http.StatusOK, dto.ListLiabilitiesResponse{
		Liabilities: liabilityResponses,
		Summary: dto.LiabilitySummaryResponse{
			TotalAmount:                  totalAmount,
			TotalAmountFormatted:         utils.FormatINR(totalAmount),
			TotalMonthlyPayment:          totalMonthly,
			TotalMonthlyPaymentFormatted: utils.FormatINR(totalMonthly),
		},
	})
}

// getSummary godoc
// @Summary Liability summary with debt-to-income ratio
// @Description Derives totals and the debt-to-income ratio for the supplied monthly income
// @Tags liabilities
// @Produce json
// @Param monthlyIncome query number true "Monthly income, must be positive"
// @Success 200 {object} dto.LiabilitySummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid monthly income"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /liabilities/summary [get]
func (h *liabilityHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.LiabilitySummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for liability summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	liabilities, err := h.liabilityService.ListLiabilities(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list liabilities for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	ratio, err := h.liabilityService.DebtToIncomeRatio(liabilities, decimal.NewFromFloat(params.MonthlyIncome))
	if err != nil {
		logger.Warn("Failed to compute debt-to-income ratio", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	totalAmount := h.liabilityService.TotalAmount(liabilities)
	totalMonthly := h.liabilityService.TotalMonthlyPayment(liabilities)
	ratioValue := ratio.Round(1).InexactFloat64()

	c.JSON(http.StatusOK, dto.LiabilitySummaryResponse{
		TotalAmount:                  totalAmount,
		TotalAmountFormatted:         utils.FormatINR(totalAmount),
		TotalMonthlyPayment:          totalMonthly,
		TotalMonthlyPaymentFormatted: utils.FormatINR(totalMonthly),
		DebtToIncomeRatio:            &ratioValue,
	})
}

// createLiability godoc
// @Summary Create a new liability
// @Description Creates a liability for the logged-in user and persists the collection
// @Tags liabilities
// @Accept json
// @Produce json
// @Param liability body dto.SaveLiabilityRequest true "Liability details"
// @Success 201 {object} dto.LiabilityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /liabilities [post]
func (h *liabilityHandler) createLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.CreateLiability(c.Request.Context(), userID, req)
	if err != nil {
		respondLiabilityError(c, logger, err, "create")
		return
	}

	logger.Info("Liability created successfully", slog.String("liability_id", liability.ID))
	c.JSON(http.StatusCreated, dto.ToLiabilityResponse(liability, time.Now()))
}

// updateLiability godoc
// @Summary Update a liability
// @Description Replaces the liability's fields in place, keeping its id
// @Tags liabilities
// @Accept json
// @Produce json
// @Param id path string true "Liability ID"
// @Param liability body dto.SaveLiabilityRequest true "Liability details"
// @Success 200 {object} dto.LiabilityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Liability not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /liabilities/{id} [put]
func (h *liabilityHandler) updateLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	liabilityID := c.Param("id")

	var req dto.SaveLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLiability", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	liability, err := h.liabilityService.UpdateLiability(c.Request.Context(), userID, liabilityID, req)
	if err != nil {
		respondLiabilityError(c, logger, err, "update")
		return
	}

	logger.Info("Liability updated successfully", slog.String("liability_id", liabilityID))
	c.JSON(http.StatusOK, dto.ToLiabilityResponse(liability, time.Now()))
}

// deleteLiability godoc
// @Summary Delete a liability
// @Description Removes the liability from the collection and persists it
// @Tags liabilities
// @Produce json
// @Param id path string true "Liability ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Liability not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /liabilities/{id} [delete]
func (h *liabilityHandler) deleteLiability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	liabilityID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.liabilityService.DeleteLiability(c.Request.Context(), userID, liabilityID); err != nil {
		respondLiabilityError(c, logger, err, "delete")
		return
	}

	logger.Info("Liability deleted successfully", slog.String("liability_id", liabilityID))
	c.Status(http.StatusNoContent)
}

func respondLiabilityError(c *gin.Context, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on liability "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Liability not found for " + op)
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Liability not found"})
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error("Persistence failure on liability "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Storage unavailable, your change was not saved"})
	default:
		logger.Error("Failed to "+op+" liability in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + op + " liability"})
	}
}
