package sim

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/config"
	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/portfolio"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

type BuyPropertyResult struct {
	Property       portfolio.Property `json:"property"`
	MonthlyPayment decimal.Decimal    `json:"monthly_payment"`
	Cash           decimal.Decimal    `json:"cash"`
	NetWorth       decimal.Decimal    `json:"net_worth"`
}

// BuyProperty purchases a catalog property listing: debits the down payment
// and sets up the mortgage with the amortized monthly payment. Listings that
// omit loan terms get the configured defaults.
func (e *Engine) BuyProperty(ctx context.Context, characterID, listingID string) (BuyPropertyResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return BuyPropertyResult{}, err
	}

	listing, ok := e.Catalog.Property(listingID)
	if !ok {
		return BuyPropertyResult{}, fmt.Errorf("%w: property listing %s", ErrNotFound, listingID)
	}

	down := ledger.FromFloat(listing.DownPayment)
	if !c.Ledger.CanAfford(down) {
		return BuyPropertyResult{}, fmt.Errorf("%w: down payment %s, have %s", ErrInsufficientFunds, down, c.Ledger.Cash)
	}

	termYears := listing.TermYears
	if termYears <= 0 {
		termYears = e.Balance.MortgageTermYears
	}
	rate := listing.AnnualRate
	if rate <= 0 {
		rate = e.Balance.MortgageAnnualRate
	}

	p := portfolio.NewProperty(
		listing.ID, listing.Name, listing.Category,
		ledger.FromFloat(listing.Price), down,
		termYears, rate, e.now(),
	)
	p.MonthlyIncome = ledger.FromFloat(listing.MonthlyIncome)
	p.MonthlyExpenses = ledger.FromFloat(listing.MonthlyExpenses)

	c.Ledger.Debit(down)
	c.Portfolio.Properties = append(c.Portfolio.Properties, p)

	b, err := e.commit(ctx, c)
	if err != nil {
		return BuyPropertyResult{}, err
	}
	e.emit(telemetry.EventPropertyBought, telemetry.EventMetadata{
		"character":       c.ID,
		"listing":         listingID,
		"property":        p.ID,
		"down_payment":    down.InexactFloat64(),
		"monthly_payment": p.MonthlyPayment.InexactFloat64(),
	})
	e.Log.WithFields(logrus.Fields{
		"character": c.ID,
		"property":  p.Name,
		"payment":   p.MonthlyPayment,
	}).Info("property bought")

	return BuyPropertyResult{
		Property:       p,
		MonthlyPayment: p.MonthlyPayment,
		Cash:           c.Ledger.Cash,
		NetWorth:       b.Total,
	}, nil
}

type SellPropertyResult struct {
	PropertyID    string          `json:"property_id"`
	MonthsHeld    int             `json:"months_held"`
	AdjustedValue decimal.Decimal `json:"adjusted_value"`
	ClosingCosts  decimal.Decimal `json:"closing_costs"`
	EarlyPayoff   decimal.Decimal `json:"early_payoff_penalty"`
	NetProceeds   decimal.Decimal `json:"net_proceeds"`
	// ShortfallCharged is how much of a negative settlement was actually
	// taken from cash; it is capped at available cash.
	ShortfallCharged decimal.Decimal `json:"shortfall_charged"`
	PartialSettle    bool            `json:"partial_settle"`
	Cash             decimal.Decimal `json:"cash"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}

// SellProperty disposes of a property, applying the holding-duration penalty
// stack: value haircut, scaled closing costs, a flat quick-flip cost and an
// early-payoff penalty on the outstanding loan. A negative settlement is
// charged against cash, capped at what is actually available.
func (e *Engine) SellProperty(ctx context.Context, characterID, propertyID string) (SellPropertyResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return SellPropertyResult{}, err
	}

	i, ok := c.Portfolio.PropertyByID(propertyID)
	if !ok {
		return SellPropertyResult{}, fmt.Errorf("%w: property %s", ErrNotFound, propertyID)
	}
	p := c.Portfolio.Properties[i]

	months := p.MonthsHeld(e.now())
	tier := saleTierFor(e.Balance, months)

	adjusted := p.CurrentValue.Mul(ledger.FromFloat(tier.ValueMultiplier)).Round(2)
	closing := adjusted.
		Mul(ledger.FromFloat(e.Balance.ClosingCostRate)).
		Mul(ledger.FromFloat(tier.ClosingMultiplier)).
		Add(p.PurchasePrice.Mul(ledger.FromFloat(tier.FlatCostRate))).
		Round(2)

	earlyPayoff := decimal.Zero
	if months < e.Balance.EarlyPayoffMonths {
		earlyPayoff = p.LoanAmount.Mul(ledger.FromFloat(e.Balance.EarlyPayoffPenaltyRate)).Round(2)
	}

	net := adjusted.Sub(closing).Sub(p.LoanAmount).Sub(earlyPayoff)

	res := SellPropertyResult{
		PropertyID:    propertyID,
		MonthsHeld:    months,
		AdjustedValue: adjusted,
		ClosingCosts:  closing,
		EarlyPayoff:   earlyPayoff,
		NetProceeds:   net,
	}

	c.Portfolio.RemoveProperty(i)
	if net.IsNegative() {
		// Shortfall settles from cash, capped at what is available. The
		// character cannot go below zero cash from this operation alone.
		charged := c.Ledger.Debit(net.Neg())
		res.ShortfallCharged = charged
		res.PartialSettle = charged.LessThan(net.Neg())
	} else {
		c.Ledger.Credit(net)
	}

	b, err := e.commit(ctx, c)
	if err != nil {
		return SellPropertyResult{}, err
	}
	e.emit(telemetry.EventPropertySold, telemetry.EventMetadata{
		"character":   c.ID,
		"property":    propertyID,
		"months_held": months,
		"proceeds":    net.InexactFloat64(),
	})
	e.Log.WithFields(logrus.Fields{
		"character":   c.ID,
		"property":    p.Name,
		"months_held": months,
		"proceeds":    net,
	}).Info("property sold")

	res.Cash = c.Ledger.Cash
	res.NetWorth = b.Total
	return res, nil
}

// saleTierFor picks the penalty tier for the holding duration. Tiers are
// ordered ascending; MaxMonthsHeld of 0 is the unbounded penalty-free tier.
func saleTierFor(bal config.Balance, monthsHeld int) config.SaleTier {
	for _, t := range bal.SaleTiers {
		if t.MaxMonthsHeld <= 0 {
			return t
		}
		if monthsHeld < t.MaxMonthsHeld {
			return t
		}
	}
	return config.SaleTier{ValueMultiplier: 1, ClosingMultiplier: 1}
}
