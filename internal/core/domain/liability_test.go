package domain_test

import (
	"testing"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiabilityCategory(t *testing.T) {
	valid := map[string]domain.LiabilityCategory{
		"mortgage": domain.CategoryMortgage,
		"vehicle":  domain.CategoryVehicle,
		"credit":   domain.CategoryCredit,
		"personal": domain.CategoryPersonal,
		"business": domain.CategoryBusiness,
		"other":    domain.CategoryOther,
	}
	for input, want := range valid {
		got, err := domain.ParseLiabilityCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"student", "Mortgage", ""} {
		_, err := domain.ParseLiabilityCategory(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestLiabilityCategory_Icon(t *testing.T) {
	tests := []struct {
		category domain.LiabilityCategory
		want     string
	}{
		{domain.CategoryMortgage, "Home"},
		{domain.CategoryVehicle, "Car"},
		{domain.CategoryCredit, "CreditCard"},
		{domain.CategoryPersonal, "Wallet"},
		{domain.CategoryBusiness, "Building"},
		{domain.CategoryOther, "Briefcase"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Icon())
	}
}

func TestLiability_MonthsRemaining(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		end  *time.Time
		now  time.Time
		want *int
	}{
		{
			name: "no end date",
			end:  nil,
			now:  date(2026, time.September, 1),
			want: nil,
		},
		{
			name: "twenty years out",
			end:  timePtr(date(2044, time.January, 15)),
			now:  date(2024, time.January, 10),
			want: intPtr(240),
		},
		{
			name: "same month",
			end:  timePtr(date(2026, time.September, 30)),
			now:  date(2026, time.September, 1),
			want: intPtr(0),
		},
		{
			name: "day of month ignored",
			end:  timePtr(date(2026, time.October, 1)),
			now:  date(2026, time.September, 30),
			want: intPtr(1),
		},
		{
			name: "past end date goes negative",
			end:  timePtr(date(2026, time.June, 1)),
			now:  date(2026, time.September, 1),
			want: intPtr(-3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liability := domain.Liability{EndDate: tt.end}
			got := liability.MonthsRemaining(tt.now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }
