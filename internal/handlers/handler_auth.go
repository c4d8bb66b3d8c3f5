package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/finsight-app/finsight_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authHandler mints session tokens for /api/v1 access. Sign-in itself
// happens at the external auth provider; this endpoint only exchanges the
// provider-verified profile for a backend session and caches the snapshot.
type authHandler struct {
	jwtSecret      string
	jwtDuration    time.Duration
	jwtIssuer      string
	profileService portssvc.ProfileSvcFacade
}

func newAuthHandler(cfg *config.Config, profileService portssvc.ProfileSvcFacade) *authHandler {
	return &authHandler{
		jwtSecret:      cfg.JWTSecret,
		jwtDuration:    cfg.JWTExpiryDuration,
		jwtIssuer:      cfg.JWTIssuer,
		profileService: profileService,
	}
}

// registerAuthRoutes registers the public session routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, profileService portssvc.ProfileSvcFacade) {
	h := newAuthHandler(cfg, profileService)

	auth := r.Group("/auth")
	{
		auth.POST("/session", h.createSession)
	}
}

// createSession godoc
// @Summary Create a session
// @Description Exchanges a provider-verified profile for a bearer token and caches the profile snapshot
// @Tags auth
// @Accept json
// @Produce json
// @Param session body dto.CreateSessionRequest true "Provider user id and profile"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create session"
// @Router /auth/session [post]
func (h *authHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSession", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	snapshot := req.Profile.ToDomainProfileSnapshot(req.UserID)
	if _, err := h.profileService.SaveProfile(c.Request.Context(), req.UserID, snapshot); err != nil {
		// The session is still usable without the cached snapshot.
		logger.Warn("Failed to cache profile snapshot during session creation", slog.String("error", err.Error()))
	}

	now := time.Now()
	expiresAt := now.Add(h.jwtDuration)
	claims := jwt.RegisteredClaims{
		Issuer:    h.jwtIssuer,
		Subject:   req.UserID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Session created", slog.String("session_user_id", req.UserID))
	c.JSON(http.StatusOK, dto.SessionResponse{Token: signed, ExpiresAt: expiresAt})
}
