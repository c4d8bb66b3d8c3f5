package domain

import (
	"fmt"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LiabilityCategory classifies a debt obligation. Closed enumeration;
// creation rejects anything outside it.
type LiabilityCategory string

const (
	CategoryMortgage LiabilityCategory = "mortgage"
	CategoryVehicle  LiabilityCategory = "vehicle"
	CategoryCredit   LiabilityCategory = "credit"
	CategoryPersonal LiabilityCategory = "personal"
	CategoryBusiness LiabilityCategory = "business"
	CategoryOther    LiabilityCategory = "other"
)

// categoryIcons maps each category to its fixed display icon tag.
var categoryIcons = map[LiabilityCategory]string{
	CategoryMortgage: "Home",
	CategoryVehicle:  "Car",
	CategoryCredit:   "CreditCard",
	CategoryPersonal: "Wallet",
	CategoryBusiness: "Building",
	CategoryOther:    "Briefcase",
}

// ParseLiabilityCategory validates a category tag read from input or storage.
func ParseLiabilityCategory(s string) (LiabilityCategory, error) {
	cat := LiabilityCategory(s)
	if _, ok := categoryIcons[cat]; !ok {
		return "", fmt.Errorf("%w: unknown liability category %q", apperrors.ErrValidation, s)
	}
	return cat, nil
}

// Icon returns the display icon tag for the category.
func (c LiabilityCategory) Icon() string {
	return categoryIcons[c]
}

// Liability represents a debt obligation. Amount is the outstanding
// principal; InterestRate is an annual percentage and may exceed 100.
// EndDate nil means open-ended, no fixed payoff date.
type Liability struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Amount         decimal.Decimal   `json:"amount"`
	MonthlyPayment decimal.Decimal   `json:"monthlyPayment"`
	InterestRate   decimal.Decimal   `json:"interestRate"`
	Category       LiabilityCategory `json:"category"`
	StartDate      time.Time         `json:"startDate"`
	EndDate        *time.Time        `json:"endDate,omitempty"`
	IsSecured      bool              `json:"isSecured"`
	Notes          string            `json:"notes,omitempty"`
}

// MonthsRemaining reports the signed whole-month difference between the
// liability's end date and now, using year and month components only (the
// day of month is ignored). nil when the liability has no end date; a
// non-positive value means due now or overdue.
func (l Liability) MonthsRemaining(now time.Time) *int {
	if l.EndDate == nil {
		return nil
	}
	months := (l.EndDate.Year()-now.Year())*12 + int(l.EndDate.Month()) - int(now.Month())
	return &months
}
