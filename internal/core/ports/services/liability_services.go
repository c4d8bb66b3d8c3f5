package services

import (
	"context"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LiabilitySvcFacade exposes liability collection management and the
// derived aggregate metrics. Mutations persist the full collection; the
// metric methods are pure functions over a collection already in hand.
type LiabilitySvcFacade interface {
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)
	CreateLiability(ctx context.Context, userID string, req dto.SaveLiabilityRequest) (*domain.Liability, error)
	UpdateLiability(ctx context.Context, userID string, liabilityID string, req dto.SaveLiabilityRequest) (*domain.Liability, error)
	DeleteLiability(ctx context.Context, userID string, liabilityID string) error

	// TotalAmount sums the outstanding principal across the collection.
	TotalAmount(liabilities []domain.Liability) decimal.Decimal

	// TotalMonthlyPayment sums the recurring payments across the collection.
	TotalMonthlyPayment(liabilities []domain.Liability) decimal.Decimal

	// DebtToIncomeRatio reports total monthly payments as a percentage of
	// the supplied monthly income. It returns apperrors.ErrValidation when
	// monthlyIncome is not positive.
	DebtToIncomeRatio(liabilities []domain.Liability, monthlyIncome decimal.Decimal) (decimal.Decimal, error)
}
