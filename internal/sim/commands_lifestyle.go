package sim

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

type AcquireItemResult struct {
	Item     lifestyle.Item  `json:"item"`
	Cash     decimal.Decimal `json:"cash"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// AcquireLifestyleItem purchases a catalog lifestyle listing. Validation runs
// before any mutation: uniqueness, prerequisite listings, minimum net worth,
// exclusion conflicts, then affordability. On success the price is debited,
// the acquisition deltas are applied (clamped) and duration-bearing items get
// their expiry date.
func (e *Engine) AcquireLifestyleItem(ctx context.Context, characterID, listingID string) (AcquireItemResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return AcquireItemResult{}, err
	}

	listing, ok := e.Catalog.LifestyleItem(listingID)
	if !ok {
		return AcquireItemResult{}, fmt.Errorf("%w: lifestyle listing %s", ErrNotFound, listingID)
	}

	if listing.Unique && c.OwnsListing(listingID) {
		return AcquireItemResult{}, fmt.Errorf("%w: %s", ErrAlreadyOwned, listingID)
	}
	for _, req := range listing.Requires {
		if !c.OwnsListing(req) {
			return AcquireItemResult{}, fmt.Errorf("%w: requires %s", ErrPrerequisiteNotMet, req)
		}
	}
	if listing.MinNetWorth > 0 && c.NetWorth.LessThan(ledger.FromFloat(listing.MinNetWorth)) {
		return AcquireItemResult{}, fmt.Errorf("%w: net worth below %v", ErrPrerequisiteNotMet, listing.MinNetWorth)
	}
	for _, excl := range listing.Excludes {
		if c.OwnsListing(excl) {
			return AcquireItemResult{}, fmt.Errorf("%w: %s excludes %s", ErrConflict, listingID, excl)
		}
	}

	price := ledger.FromFloat(listing.Price)
	if !c.Ledger.CanAfford(price) {
		return AcquireItemResult{}, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, price, c.Ledger.Cash)
	}

	c.Ledger.Debit(price)
	item := lifestyle.NewItem(
		listing.ID, listing.Name, listing.Category,
		price, ledger.FromFloat(listing.MonthlyCost),
		listing.Effects, listing.DurationDays, e.now(),
	)
	c.Lifestyle = append(c.Lifestyle, item)
	c.ApplyEffects(item.Effects, 1)

	b, err := e.commit(ctx, c)
	if err != nil {
		return AcquireItemResult{}, err
	}
	e.emit(telemetry.EventItemAcquired, telemetry.EventMetadata{
		"character": c.ID,
		"listing":   listingID,
		"category":  string(listing.Category),
		"price":     price.InexactFloat64(),
	})
	e.Log.WithFields(logrus.Fields{
		"character": c.ID,
		"item":      item.Name,
		"price":     price,
	}).Info("lifestyle item acquired")

	return AcquireItemResult{Item: item, Cash: c.Ledger.Cash, NetWorth: b.Total}, nil
}

type ReleaseItemResult struct {
	ItemID   string          `json:"item_id"`
	Refund   decimal.Decimal `json:"refund"`
	Cash     decimal.Decimal `json:"cash"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// ReleaseLifestyleItem sells an owned item back: a fixed fraction of the
// purchase price returns to cash, half of the one-time happiness/prestige
// deltas are reversed (the experience already happened) and the recurring
// maintenance cost goes away with the item.
func (e *Engine) ReleaseLifestyleItem(ctx context.Context, characterID, itemID string) (ReleaseItemResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return ReleaseItemResult{}, err
	}

	i, ok := c.LifestyleItemByID(itemID)
	if !ok {
		return ReleaseItemResult{}, fmt.Errorf("%w: lifestyle item %s", ErrNotFound, itemID)
	}
	item := c.Lifestyle[i]

	refund := item.Price.Mul(ledger.FromFloat(e.Balance.ResaleFraction)).Round(2)
	c.RemoveLifestyleItem(i)
	c.Ledger.Credit(refund)
	c.Attributes.AdjustHappiness(-item.Effects.Happiness / 2)
	c.Attributes.AdjustPrestige(-item.Effects.Prestige / 2)

	b, err := e.commit(ctx, c)
	if err != nil {
		return ReleaseItemResult{}, err
	}
	e.emit(telemetry.EventItemReleased, telemetry.EventMetadata{
		"character": c.ID,
		"item":      itemID,
		"refund":    refund.InexactFloat64(),
	})

	return ReleaseItemResult{ItemID: itemID, Refund: refund, Cash: c.Ledger.Cash, NetWorth: b.Total}, nil
}
