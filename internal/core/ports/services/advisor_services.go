package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

// AdvisorSvcFacade wraps the external AI backend. Both calls are
// context-cancellable, have no side effects on the stores, and report every
// failure as apperrors.ErrExternalService.
type AdvisorSvcFacade interface {
	// Chat sends one user turn and returns the assistant's thought and
	// output, with currency glyphs re-labelled to ₹.
	Chat(ctx context.Context, input string) (*domain.AdvisorReply, error)

	// FinancialPath requests an investment-pathway graph for the given
	// risk tier, returned verbatim for the flow renderer.
	FinancialPath(ctx context.Context, input string, risk domain.RiskTier) (*domain.PathwayGraph, error)
}

// ProfileSvcFacade caches and serves the auth-provider profile snapshot.
type ProfileSvcFacade interface {
	// GetProfile returns the cached snapshot, or apperrors.ErrNotFound.
	GetProfile(ctx context.Context, userID string) (*domain.ProfileSnapshot, error)

	// SaveProfile replaces the cached snapshot for the user.
	SaveProfile(ctx context.Context, userID string, profile domain.ProfileSnapshot) (*domain.ProfileSnapshot, error)
}
