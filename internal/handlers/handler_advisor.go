package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const advisorUnavailableMsg = "Sorry, the advisor is unavailable right now. Please try again in a moment."

type advisorHandler struct {
	advisorService portssvc.AdvisorSvcFacade
}

func newAdvisorHandler(advisorService portssvc.AdvisorSvcFacade) *advisorHandler {
	return &advisorHandler{advisorService: advisorService}
}

// registerAdvisorRoutes registers the advisor proxy routes.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvcFacade) {
	h := newAdvisorHandler(advisorService)

	advisor := rg.Group("/advisor")
	{
		advisor.POST("/chat", h.chat)
		advisor.POST("/financial-path", h.financialPath)
	}
}

// chat godoc
// @Summary Ask the financial advisor
// @Description Forwards a free-form question to the advisor agent and returns its reply
// @Tags advisor
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Advisor unavailable"
// @Security BearerAuth
// @Router /advisor/chat [post]
func (h *advisorHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Chat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reply, err := h.advisorService.Chat(c.Request.Context(), req.Input)
	if err != nil {
		h.respondAdvisorError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Thought: reply.Thought, Output: reply.Output})
}

// financialPath godoc
// @Summary Generate a financial pathway graph
// @Description Returns a node/edge graph for the chosen risk tier, optionally steered by a custom prompt
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.FinancialPathRequest true "Prompt and risk tier"
// @Success 200 {object} dto.FinancialPathResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Advisor unavailable"
// @Security BearerAuth
// @Router /advisor/financial-path [post]
func (h *advisorHandler) financialPath(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FinancialPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FinancialPath", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	graph, err := h.advisorService.FinancialPath(c.Request.Context(), req.Input, domain.RiskTier(req.Risk))
	if err != nil {
		h.respondAdvisorError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FinancialPathResponse{Nodes: graph.Nodes, Edges: graph.Edges})
}

func (h *advisorHandler) respondAdvisorError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrExternalService):
		logger.Error("Advisor agent request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: advisorUnavailableMsg})
	default:
		logger.Error("Unexpected advisor error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "An unexpected error occurred"})
	}
}
