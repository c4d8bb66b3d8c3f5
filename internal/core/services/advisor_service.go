package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/middleware"
)

const (
	chatPath    = "/agent"
	pathwayPath = "/ai-financial-path"

	// maxAdvisorResponseBytes caps how much of a response body is read.
	maxAdvisorResponseBytes = 1 << 20
)

// defaultPathwayPrompts stand in when the user submits a risk tier without
// describing their situation.
var defaultPathwayPrompts = map[domain.RiskTier]string{
	domain.RiskConservative: "I'm looking for a low-risk investment strategy to preserve my capital. I prefer stable returns and want to invest ₹1 lakh for 3-5 years. Safety is my primary concern.",
	domain.RiskBalanced:     "I want a balanced investment strategy with moderate risk. I can invest ₹10 lakhs across different asset classes for steady growth.",
	domain.RiskAggressive:   "I'm seeking high returns and can take high risks. I want to invest ₹1 lakh for 7-10 years in growth-oriented instruments. Market volatility doesn't worry me.",
}

type advisorService struct {
	baseURL string
	client  *http.Client
}

// NewAdvisorService creates the client for the external advisor backend.
// The backend is an opaque collaborator; its payloads are display data and
// pass through uninterpreted apart from currency glyph relabelling.
func NewAdvisorService(baseURL string, timeout time.Duration) portssvc.AdvisorSvcFacade {
	return &advisorService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *advisorService) Chat(ctx context.Context, input string) (*domain.AdvisorReply, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	form := url.Values{}
	form.Set("input", input)

	body, err := s.postForm(ctx, chatPath, form)
	if err != nil {
		logger.Warn("Advisor chat call failed", slog.String("error", err.Error()))
		return nil, err
	}

	var payload struct {
		Thought string `json:"thought"`
		Output  string `json:"output"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed chat payload: %v", apperrors.ErrExternalService, err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("%w: advisor backend reported: %s", apperrors.ErrExternalService, payload.Error)
	}
	if payload.Output == "" {
		return nil, fmt.Errorf("%w: chat payload missing output", apperrors.ErrExternalService)
	}

	return &domain.AdvisorReply{
		Thought: relabelCurrency(payload.Thought),
		Output:  relabelCurrency(payload.Output),
	}, nil
}

func (s *advisorService) FinancialPath(ctx context.Context, input string, risk domain.RiskTier) (*domain.PathwayGraph, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := domain.ParseRiskTier(string(risk)); err != nil {
		return nil, err
	}
	if input == "" {
		input = defaultPathwayPrompts[risk]
	}

	form := url.Values{}
	form.Set("input", input)
	form.Set("risk", string(risk))

	body, err := s.postForm(ctx, pathwayPath, form)
	if err != nil {
		logger.Warn("Advisor pathway call failed", slog.String("error", err.Error()), slog.String("risk", string(risk)))
		return nil, err
	}

	var graph domain.PathwayGraph
	if err := json.Unmarshal(body, &graph); err != nil {
		return nil, fmt.Errorf("%w: malformed pathway payload: %v", apperrors.ErrExternalService, err)
	}
	if emptyJSONArray(graph.Nodes) || emptyJSONArray(graph.Edges) {
		return nil, fmt.Errorf("%w: pathway payload missing nodes or edges", apperrors.ErrExternalService)
	}

	return &graph, nil
}

// emptyJSONArray reports whether raw is absent, null, not an array, or an
// array with no elements.
func emptyJSONArray(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return true
	}
	return len(items) == 0
}

func (s *advisorService) postForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAdvisorResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", apperrors.ErrExternalService, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: advisor backend returned status %d", apperrors.ErrExternalService, resp.StatusCode)
	}
	return body, nil
}

// relabelCurrency swaps the dollar glyph the model tends to emit for the
// rupee glyph the dashboard displays.
func relabelCurrency(s string) string {
	return strings.ReplaceAll(s, "$", "₹")
}
