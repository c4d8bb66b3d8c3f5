package domain

import "github.com/shopspring/decimal"

// Asset is a holding used as projection input. It is session-scoped and
// never persisted: IDs are sequential within the submitted list.
type Asset struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	ExpectedReturn decimal.Decimal `json:"expectedReturn"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// PresentValue is the current worth of the holding, unit price times quantity.
func (a Asset) PresentValue() decimal.Decimal {
	return a.CurrentValue.Mul(a.Quantity)
}
