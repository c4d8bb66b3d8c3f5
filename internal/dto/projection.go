package dto

import (
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/finsight-app/finsight_backend/internal/core/projection"
	"github.com/shopspring/decimal"
)

// ProjectionAssetInput is one holding in a projection request. The expected
// return may be negative for depreciating assets.
type ProjectionAssetInput struct {
	Name           string  `json:"name" binding:"required"`
	CurrentValue   float64 `json:"currentValue" binding:"min=0"`
	ExpectedReturn float64 `json:"expectedReturn"`
	Quantity       float64 `json:"quantity" binding:"min=0"`
}

// ProjectSeriesRequest defines the projection inputs. An empty asset list
// is valid and yields a series of zero totals.
type ProjectSeriesRequest struct {
	Assets       []ProjectionAssetInput `json:"assets" binding:"omitempty,dive"`
	HorizonYears int                    `json:"horizonYears" binding:"min=0,max=100"`
}

// ToDomainAssets converts the request assets to domain assets, assigning
// sequential ids within the submitted list.
func (r ProjectSeriesRequest) ToDomainAssets() []domain.Asset {
	assets := make([]domain.Asset, len(r.Assets))
	for i, a := range r.Assets {
		assets[i] = domain.Asset{
			ID:             i + 1,
			Name:           a.Name,
			CurrentValue:   decimal.NewFromFloat(a.CurrentValue),
			ExpectedReturn: decimal.NewFromFloat(a.ExpectedReturn),
			Quantity:       decimal.NewFromFloat(a.Quantity),
		}
	}
	return assets
}

// ProjectSeriesResponse wraps the projected series.
type ProjectSeriesResponse struct {
	Series []projection.YearSnapshot `json:"series"`
}

// AssetResponse mirrors a domain.Asset for the default-portfolio endpoint.
type AssetResponse struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	ExpectedReturn decimal.Decimal `json:"expectedReturn"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// ToListAssetResponse converts a slice of domain.Asset to DTOs.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i, a := range assets {
		res[i] = AssetResponse{
			ID:             a.ID,
			Name:           a.Name,
			CurrentValue:   a.CurrentValue,
			ExpectedReturn: a.ExpectedReturn,
			Quantity:       a.Quantity,
		}
	}
	return res
}

// ListAssetsResponse wraps the default asset list.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}
