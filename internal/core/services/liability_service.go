package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type liabilityService struct {
	repo portsrepo.LiabilityRepository
}

// NewLiabilityService creates the liability service backed by the given repository.
func NewLiabilityService(repo portsrepo.LiabilityRepository) portssvc.LiabilitySvcFacade {
	return &liabilityService{repo: repo}
}

func (s *liabilityService) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	liabilities, err := s.repo.LoadLiabilities(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPersistence) {
			logger.Warn("Failed to load liabilities, degrading to empty collection", slog.String("error", err.Error()))
			return []domain.Liability{}, nil
		}
		return nil, err
	}
	if liabilities == nil {
		return []domain.Liability{}, nil
	}
	return liabilities, nil
}

func (s *liabilityService) CreateLiability(ctx context.Context, userID string, req dto.SaveLiabilityRequest) (*domain.Liability, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	liability, err := liabilityFromRequest(req)
	if err != nil {
		return nil, err
	}
	liability.ID = uuid.NewString()

	liabilities, err := s.repo.LoadLiabilities(ctx, userID)
	if err != nil {
		logger.Error("Failed to load liabilities before create", slog.String("error", err.Error()))
		return nil, err
	}

	liabilities = append(liabilities, *liability)
	if err := s.repo.ReplaceLiabilities(ctx, userID, liabilities); err != nil {
		logger.Error("Failed to persist liabilities after create", slog.String("error", err.Error()), slog.String("liability_id", liability.ID))
		return nil, err
	}

	logger.Info("Liability created successfully in service", slog.String("liability_id", liability.ID))
	return liability, nil
}

func (s *liabilityService) UpdateLiability(ctx context.Context, userID string, liabilityID string, req dto.SaveLiabilityRequest) (*domain.Liability, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	updated, err := liabilityFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = liabilityID

	liabilities, err := s.repo.LoadLiabilities(ctx, userID)
	if err != nil {
		logger.Error("Failed to load liabilities before update", slog.String("error", err.Error()))
		return nil, err
	}

	idx := -1
	for i := range liabilities {
		if liabilities[i].ID == liabilityID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: liability %s", apperrors.ErrNotFound, liabilityID)
	}

	liabilities[idx] = *updated
	if err := s.repo.ReplaceLiabilities(ctx, userID, liabilities); err != nil {
		logger.Error("Failed to persist liabilities after update", slog.String("error", err.Error()), slog.String("liability_id", liabilityID))
		return nil, err
	}

	logger.Info("Liability updated successfully in service", slog.String("liability_id", liabilityID))
	return updated, nil
}

func (s *liabilityService) DeleteLiability(ctx context.Context, userID string, liabilityID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	liabilities, err := s.repo.LoadLiabilities(ctx, userID)
	if err != nil {
		logger.Error("Failed to load liabilities before delete", slog.String("error", err.Error()))
		return err
	}

	remaining := liabilities[:0:0]
	for _, l := range liabilities {
		if l.ID != liabilityID {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == len(liabilities) {
		return fmt.Errorf("%w: liability %s", apperrors.ErrNotFound, liabilityID)
	}

	if err := s.repo.ReplaceLiabilities(ctx, userID, remaining); err != nil {
		logger.Error("Failed to persist liabilities after delete", slog.String("error", err.Error()), slog.String("liability_id", liabilityID))
		return err
	}

	logger.Info("Liability deleted successfully in service", slog.String("liability_id", liabilityID))
	return nil
}

func (s *liabilityService) TotalAmount(liabilities []domain.Liability) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		total = total.Add(l.Amount)
	}
	return total
}

func (s *liabilityService) TotalMonthlyPayment(liabilities []domain.Liability) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		total = total.Add(l.MonthlyPayment)
	}
	return total
}

// DebtToIncomeRatio reports total monthly payments as a percentage of the
// supplied monthly income. Income is a caller-supplied parameter; there is
// no income store to source it from.
func (s *liabilityService) DebtToIncomeRatio(liabilities []domain.Liability, monthlyIncome decimal.Decimal) (decimal.Decimal, error) {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: monthly income must be positive", apperrors.ErrValidation)
	}
	return s.TotalMonthlyPayment(liabilities).Div(monthlyIncome).Mul(decimal.NewFromInt(100)), nil
}

// liabilityFromRequest validates and converts the input. The end date, when
// present, is assumed chronologically after the start date; the
// time-remaining computation reports "Due" if it is not.
func liabilityFromRequest(req dto.SaveLiabilityRequest) (*domain.Liability, error) {
	category, err := domain.ParseLiabilityCategory(req.Category)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dto.DateOnly, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", apperrors.ErrValidation, err)
	}

	liability := &domain.Liability{
		Name:           req.Name,
		Amount:         decimal.NewFromFloat(req.Amount),
		MonthlyPayment: decimal.NewFromFloat(req.MonthlyPayment),
		InterestRate:   decimal.NewFromFloat(req.InterestRate),
		Category:       category,
		StartDate:      startDate,
		IsSecured:      req.IsSecured,
		Notes:          req.Notes,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse(dto.DateOnly, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end date: %v", apperrors.ErrValidation, err)
		}
		liability.EndDate = &endDate
	}

	return liability, nil
}
