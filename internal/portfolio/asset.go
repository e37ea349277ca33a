package portfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetCategory string

const (
	AssetEquity AssetCategory = "equity"
	AssetBond   AssetCategory = "bond"
	AssetCrypto AssetCategory = "crypto"
	AssetOther  AssetCategory = "other"
)

// Asset is one investment holding. PurchasePrice is the weighted average
// across repeated buys; the holding is removed once quantity reaches zero.
type Asset struct {
	ID            string          `json:"id"`
	ListingID     string          `json:"listing_id"`
	Name          string          `json:"name"`
	Category      AssetCategory   `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
}

// NewAsset creates a holding for a first-time buy.
func NewAsset(listingID, name string, category AssetCategory, quantity, price decimal.Decimal) Asset {
	return Asset{
		ID:            uuid.NewString(),
		ListingID:     listingID,
		Name:          name,
		Category:      category,
		Quantity:      quantity,
		PurchasePrice: price,
		CurrentPrice:  price,
	}
}

// MarketValue is quantity at the current price.
func (a Asset) MarketValue() decimal.Decimal {
	return a.Quantity.Mul(a.CurrentPrice)
}

// Merge folds an additional buy into the holding, recomputing the
// weighted-average purchase price.
func (a *Asset) Merge(quantity, price decimal.Decimal) {
	total := a.Quantity.Add(quantity)
	if total.IsZero() {
		return
	}
	oldCost := a.Quantity.Mul(a.PurchasePrice)
	newCost := quantity.Mul(price)
	a.PurchasePrice = oldCost.Add(newCost).Div(total)
	a.Quantity = total
	a.CurrentPrice = price
}
