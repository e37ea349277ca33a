// Package ledger holds the scalar cash balance and the raw income/expense
// accumulators. All other components read and write money through it.
package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

// Ledger is the single cash account of a character. Mutations stamp a new
// revision so dependent views can detect staleness.
type Ledger struct {
	Cash          decimal.Decimal `json:"cash"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Revision      int64           `json:"revision"`
}

// New returns a ledger seeded with starting cash.
func New(startingCash decimal.Decimal) Ledger {
	return Ledger{Cash: sanitize(startingCash)}
}

// Credit adds amount to cash. Negative amounts are coerced to zero.
func (l *Ledger) Credit(amount decimal.Decimal) {
	l.Cash = l.Cash.Add(sanitize(amount))
	l.Revision++
}

// Debit removes up to amount from cash, clamped so cash never goes negative,
// and returns the amount actually deducted.
func (l *Ledger) Debit(amount decimal.Decimal) decimal.Decimal {
	amount = sanitize(amount)
	if amount.GreaterThan(l.Cash) {
		amount = l.Cash
	}
	l.Cash = l.Cash.Sub(amount)
	l.Revision++
	return amount
}

// RecordIncome bumps the lifetime income accumulator.
func (l *Ledger) RecordIncome(amount decimal.Decimal) {
	l.TotalIncome = l.TotalIncome.Add(sanitize(amount))
	l.Revision++
}

// RecordExpense bumps the lifetime expense accumulator.
func (l *Ledger) RecordExpense(amount decimal.Decimal) {
	l.TotalExpenses = l.TotalExpenses.Add(sanitize(amount))
	l.Revision++
}

// CanAfford reports whether cash covers amount.
func (l *Ledger) CanAfford(amount decimal.Decimal) bool {
	return l.Cash.GreaterThanOrEqual(sanitize(amount))
}

// sanitize coerces negative magnitudes to zero. Callers feed us raw numbers
// from many places; a negative or garbage magnitude must never flip the sign
// of an operation.
func sanitize(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FromFloat converts a float into a money decimal, coercing NaN and
// infinities to zero.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
