package sim

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

type BuyAssetResult struct {
	Asset    portfolio.Asset `json:"asset"`
	Cost     decimal.Decimal `json:"cost"`
	Cash     decimal.Decimal `json:"cash"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// BuyAsset purchases quantity units of a catalog asset listing, merging into
// any existing holding with a weighted-average purchase price.
func (e *Engine) BuyAsset(ctx context.Context, characterID, listingID string, quantity float64) (BuyAssetResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return BuyAssetResult{}, err
	}

	listing, ok := e.Catalog.Asset(listingID)
	if !ok {
		return BuyAssetResult{}, fmt.Errorf("%w: asset listing %s", ErrNotFound, listingID)
	}
	qty := ledger.FromFloat(quantity)
	if qty.LessThanOrEqual(decimal.Zero) {
		return BuyAssetResult{}, fmt.Errorf("quantity must be positive, got %v", quantity)
	}

	price := ledger.FromFloat(listing.Price)
	cost := price.Mul(qty).Round(2)
	if !c.Ledger.CanAfford(cost) {
		return BuyAssetResult{}, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, cost, c.Ledger.Cash)
	}

	c.Ledger.Debit(cost)

	var held portfolio.Asset
	if i, ok := c.Portfolio.AssetByListing(listingID); ok {
		c.Portfolio.Assets[i].Merge(qty, price)
		held = c.Portfolio.Assets[i]
	} else {
		held = portfolio.NewAsset(listingID, listing.Name, listing.Category, qty, price)
		c.Portfolio.Assets = append(c.Portfolio.Assets, held)
	}

	b, err := e.commit(ctx, c)
	if err != nil {
		return BuyAssetResult{}, err
	}
	e.emit(telemetry.EventAssetBought, telemetry.EventMetadata{
		"character": c.ID,
		"listing":   listingID,
		"quantity":  quantity,
		"cost":      cost.InexactFloat64(),
	})
	e.Log.WithFields(logrus.Fields{
		"character": c.ID,
		"listing":   listingID,
		"cost":      cost,
	}).Info("asset bought")

	return BuyAssetResult{Asset: held, Cost: cost, Cash: c.Ledger.Cash, NetWorth: b.Total}, nil
}

type SellAssetResult struct {
	ListingID string          `json:"listing_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Proceeds  decimal.Decimal `json:"proceeds"`
	Remaining decimal.Decimal `json:"remaining"`
	Cash      decimal.Decimal `json:"cash"`
	NetWorth  decimal.Decimal `json:"net_worth"`
}

// SellAsset sells up to quantity units of a holding at the current price; the
// requested quantity is clamped to the amount actually held, and the holding
// is removed once its quantity reaches zero.
func (e *Engine) SellAsset(ctx context.Context, characterID, listingID string, quantity float64) (SellAssetResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return SellAssetResult{}, err
	}

	i, ok := c.Portfolio.AssetByListing(listingID)
	if !ok {
		return SellAssetResult{}, fmt.Errorf("%w: no holding for listing %s", ErrNotFound, listingID)
	}
	qty := ledger.FromFloat(quantity)
	if qty.LessThanOrEqual(decimal.Zero) {
		return SellAssetResult{}, fmt.Errorf("quantity must be positive, got %v", quantity)
	}
	held := &c.Portfolio.Assets[i]
	if qty.GreaterThan(held.Quantity) {
		qty = held.Quantity
	}

	proceeds := held.CurrentPrice.Mul(qty).Round(2)
	held.Quantity = held.Quantity.Sub(qty)
	remaining := held.Quantity
	if remaining.IsZero() {
		c.Portfolio.RemoveAsset(i)
	}
	c.Ledger.Credit(proceeds)

	b, err := e.commit(ctx, c)
	if err != nil {
		return SellAssetResult{}, err
	}
	e.emit(telemetry.EventAssetSold, telemetry.EventMetadata{
		"character": c.ID,
		"listing":   listingID,
		"proceeds":  proceeds.InexactFloat64(),
	})

	return SellAssetResult{
		ListingID: listingID,
		Quantity:  qty,
		Proceeds:  proceeds,
		Remaining: remaining,
		Cash:      c.Ledger.Cash,
		NetWorth:  b.Total,
	}, nil
}
