package dto

import (
	"strconv"
	"time"

	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateOnly is the calendar-date layout liabilities use on the wire.
const DateOnly = "2006-01-02"

// SaveLiabilityRequest defines the data needed to create a liability or
// fully replace an existing one. The interest rate is an annual percentage
// and may exceed 100 for high-interest debt.
type SaveLiabilityRequest struct {
	Name           string  `json:"name" binding:"required"`
	Amount         float64 `json:"amount" binding:"min=0"`
	MonthlyPayment float64 `json:"monthlyPayment" binding:"min=0"`
	InterestRate   float64 `json:"interestRate" binding:"min=0"`
	Category       string  `json:"category" binding:"required,oneof=mortgage vehicle credit personal business other"`
	StartDate      string  `json:"startDate" binding:"required,dateonly"`
	EndDate        string  `json:"endDate" binding:"omitempty,dateonly"`
	IsSecured      bool    `json:"isSecured"`
	Notes          string  `json:"notes"`
}

// LiabilityResponse defines the data returned for a liability.
type LiabilityResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	Category        string          `json:"category"`
	CategoryIcon    string          `json:"categoryIcon"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate,omitempty"`
	IsSecured       bool            `json:"isSecured"`
	Notes           string          `json:"notes,omitempty"`
	MonthsRemaining *int            `json:"monthsRemaining,omitempty"`
	TimeRemaining   string          `json:"timeRemaining,omitempty"`
}

// ToLiabilityResponse converts a domain.Liability to a LiabilityResponse
// DTO, deriving the time-remaining fields from now.
func ToLiabilityResponse(l *domain.Liability, now time.Time) LiabilityResponse {
	resp := LiabilityResponse{
		ID:             l.ID,
		Name:           l.Name,
		Amount:         l.Amount,
		MonthlyPayment: l.MonthlyPayment,
		InterestRate:   l.InterestRate,
		Category:       string(l.Category),
		CategoryIcon:   l.Category.Icon(),
		StartDate:      l.StartDate.Format(DateOnly),
		IsSecured:      l.IsSecured,
		Notes:          l.Notes,
	}
	if l.EndDate != nil {
		resp.EndDate = l.EndDate.Format(DateOnly)
	}
	if months := l.MonthsRemaining(now); months != nil {
		resp.MonthsRemaining = months
		resp.TimeRemaining = FormatTimeRemaining(*months)
	}
	return resp
}

// FormatTimeRemaining renders a month count the way the liabilities tab
// shows it: "Due" once the payoff date is reached.
func FormatTimeRemaining(months int) string {
	if months <= 0 {
		return "Due"
	}
	if months == 1 {
		return "1 month remaining"
	}
	return strconv.Itoa(months) + " months remaining"
}

// LiabilitySummaryResponse carries the derived aggregate metrics for the
// liabilities header. DebtToIncomeRatio is only present when the caller
// supplied a monthly income.
type LiabilitySummaryResponse struct {
	TotalAmount                  decimal.Decimal `json:"totalAmount"`
	TotalAmountFormatted         string          `json:"totalAmountFormatted"`
	TotalMonthlyPayment          decimal.Decimal `json:"totalMonthlyPayment"`
	TotalMonthlyPaymentFormatted string          `json:"totalMonthlyPaymentFormatted"`
	DebtToIncomeRatio            *float64        `json:"debtToIncomeRatio,omitempty"`
}

// ListLiabilitiesResponse wraps the liability collection and its summary.
type ListLiabilitiesResponse struct {
	Liabilities []LiabilityResponse      `json:"liabilities"`
	Summary     LiabilitySummaryResponse `json:"summary"`
}

// LiabilitySummaryParams defines query parameters for the summary endpoint.
type LiabilitySummaryParams struct {
	MonthlyIncome float64 `form:"monthlyIncome" binding:"required,gt=0"`
}
