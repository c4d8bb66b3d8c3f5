package projection_test

import (
	"testing"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValue_ZeroRate(t *testing.T) {
	fv, err := projection.FutureValue(decimal.NewFromInt(100000), decimal.Zero, 5)

	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(100000)), "expected 100000, got %s", fv)
}

func TestFutureValue_DoublesAtHundredPercent(t *testing.T) {
	fv, err := projection.FutureValue(decimal.NewFromInt(50000), decimal.NewFromInt(100), 1)

	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(100000)), "expected 100000, got %s", fv)
}

func TestFutureValue_CompoundGrowth(t *testing.T) {
	// 100000 at 10% over 2 years = 121000
	fv, err := projection.FutureValue(decimal.NewFromInt(100000), decimal.NewFromInt(10), 2)

	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(121000)), "expected 121000, got %s", fv)
}

func TestFutureValue_NegativeRateDepreciates(t *testing.T) {
	// 100000 at -50% over 1 year = 50000
	fv, err := projection.FutureValue(decimal.NewFromInt(100000), decimal.NewFromInt(-50), 1)

	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(50000)), "expected 50000, got %s", fv)
}

func TestFutureValue_ZeroYearsIsIdentity(t *testing.T) {
	fv, err := projection.FutureValue(decimal.NewFromInt(12345), decimal.NewFromInt(42), 0)

	require.NoError(t, err)
	assert.True(t, fv.Equal(decimal.NewFromInt(12345)))
}

func TestFutureValue_NegativeYearsRejected(t *testing.T) {
	_, err := projection.FutureValue(decimal.NewFromInt(100), decimal.NewFromInt(10), -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProjectSeries_SnapshotPerYearInclusive(t *testing.T) {
	assets := []domain.Asset{
		{ID: 1, Name: "Stocks", CurrentValue: decimal.NewFromInt(1000), ExpectedReturn: decimal.NewFromInt(10), Quantity: decimal.NewFromInt(1)},
	}

	series, err := projection.ProjectSeries(assets, 3)

	require.NoError(t, err)
	require.Len(t, series, 4)
	assert.Equal(t, 0, series[0].Year)
	assert.Equal(t, 3, series[3].Year)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(1100)))
	assert.True(t, series[2].Total.Equal(decimal.NewFromInt(1210)))
	assert.True(t, series[3].Total.Equal(decimal.NewFromInt(1331)))
}

func TestProjectSeries_QuantityScalesPresentValue(t *testing.T) {
	assets := []domain.Asset{
		{ID: 1, Name: "Gold", CurrentValue: decimal.NewFromInt(150000), ExpectedReturn: decimal.Zero, Quantity: decimal.NewFromInt(50)},
	}

	series, err := projection.ProjectSeries(assets, 0)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(7500000)))
}

func TestProjectSeries_DuplicateNamesSummed(t *testing.T) {
	assets := []domain.Asset{
		{ID: 1, Name: "Stocks", CurrentValue: decimal.NewFromInt(1000), ExpectedReturn: decimal.Zero, Quantity: decimal.NewFromInt(1)},
		{ID: 2, Name: "Stocks", CurrentValue: decimal.NewFromInt(2000), ExpectedReturn: decimal.Zero, Quantity: decimal.NewFromInt(1)},
	}

	series, err := projection.ProjectSeries(assets, 0)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].Values["Stocks"].Equal(decimal.NewFromInt(3000)))
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(3000)))
}

func TestProjectSeries_EmptyAssetList(t *testing.T) {
	series, err := projection.ProjectSeries(nil, 5)

	require.NoError(t, err)
	require.Len(t, series, 6)
	for _, snapshot := range series {
		assert.True(t, snapshot.Total.IsZero())
		assert.Empty(t, snapshot.Values)
	}
}

func TestProjectSeries_NegativeHorizonRejected(t *testing.T) {
	_, err := projection.ProjectSeries(nil, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProjectSeries_Deterministic(t *testing.T) {
	assets := projection.DefaultAssets()

	first, err := projection.ProjectSeries(assets, 10)
	require.NoError(t, err)
	second, err := projection.ProjectSeries(assets, 10)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Total.Equal(second[i].Total), "year %d differs", first[i].Year)
	}
}

func TestDefaultAssets_KnownPortfolio(t *testing.T) {
	assets := projection.DefaultAssets()

	require.Len(t, assets, 4)
	names := make([]string, 0, len(assets))
	for _, a := range assets {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Stocks", "Mutual Funds", "Gold", "Real Estate"}, names)

	// Real estate is a single holding
	assert.True(t, assets[3].PresentValue().Equal(decimal.NewFromInt(5000000)))
}
