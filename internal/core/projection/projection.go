// Package projection computes compound-growth projections for a list of
// assets. Everything here is pure: identical inputs always produce
// identical outputs.
package projection

import (
	"fmt"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// YearSnapshot holds the projected value of every asset, and their total,
// for one year of the horizon.
type YearSnapshot struct {
	Year   int                        `json:"year"`
	Values map[string]decimal.Decimal `json:"values"`
	Total  decimal.Decimal            `json:"total"`
}

// FutureValue compounds a present value at an annual percentage rate over a
// whole number of years: value * (1 + rate/100)^years. The rate may be
// negative for depreciating assets; years must be non-negative.
func FutureValue(value decimal.Decimal, annualReturnPercent decimal.Decimal, years int) (decimal.Decimal, error) {
	if years < 0 {
		return decimal.Zero, fmt.Errorf("%w: years must be non-negative, got %d", apperrors.ErrValidation, years)
	}
	factor := decimal.NewFromInt(1).Add(annualReturnPercent.Div(hundred))
	return value.Mul(factor.Pow(decimal.NewFromInt(int64(years)))), nil
}

// ProjectSeries produces one snapshot per year from 0 through horizonYears
// inclusive. Year 0 equals present values. An empty asset list yields a
// series with zero totals. Assets sharing a name have their values summed
// under that name.
func ProjectSeries(assets []domain.Asset, horizonYears int) ([]YearSnapshot, error) {
	if horizonYears < 0 {
		return nil, fmt.Errorf("%w: horizon must be non-negative, got %d", apperrors.ErrValidation, horizonYears)
	}

	series := make([]YearSnapshot, 0, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		snapshot := YearSnapshot{
			Year:   year,
			Values: make(map[string]decimal.Decimal, len(assets)),
			Total:  decimal.Zero,
		}
		for _, asset := range assets {
			fv, err := FutureValue(asset.PresentValue(), asset.ExpectedReturn, year)
			if err != nil {
				return nil, err
			}
			snapshot.Values[asset.Name] = snapshot.Values[asset.Name].Add(fv)
			snapshot.Total = snapshot.Total.Add(fv)
		}
		series = append(series, snapshot)
	}
	return series, nil
}

// DefaultAssets returns the demo portfolio the calculator seeds a session
// with before the user adds holdings of their own.
func DefaultAssets() []domain.Asset {
	return []domain.Asset{
		{ID: 1, Name: "Stocks", CurrentValue: decimal.NewFromInt(100000), ExpectedReturn: decimal.NewFromInt(12), Quantity: decimal.NewFromInt(10)},
		{ID: 2, Name: "Mutual Funds", CurrentValue: decimal.NewFromInt(200000), ExpectedReturn: decimal.NewFromInt(10), Quantity: decimal.NewFromInt(10)},
		{ID: 3, Name: "Gold", CurrentValue: decimal.NewFromInt(150000), ExpectedReturn: decimal.NewFromInt(8), Quantity: decimal.NewFromInt(50)},
		{ID: 4, Name: "Real Estate", CurrentValue: decimal.NewFromInt(5000000), ExpectedReturn: decimal.NewFromInt(15), Quantity: decimal.NewFromInt(1)},
	}
}
