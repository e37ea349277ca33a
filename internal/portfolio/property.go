package portfolio

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property is an owned real-estate holding. The loan amount is fixed at
// purchase (purchase price minus down payment) and treated as static until
// sale; current value appreciates independently.
type Property struct {
	ID              string          `json:"id"`
	ListingID       string          `json:"listing_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	LoanAmount      decimal.Decimal `json:"loan_amount"`
	TermYears       int             `json:"term_years"`
	AnnualRate      float64         `json:"annual_rate"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	AcquiredAt      time.Time       `json:"acquired_at"`
}

// NewProperty builds the holding for a purchase, deriving the loan amount and
// the amortized monthly payment.
func NewProperty(listingID, name, category string, price, downPayment decimal.Decimal, termYears int, annualRate float64, acquiredAt time.Time) Property {
	loan := price.Sub(downPayment)
	if loan.IsNegative() {
		loan = decimal.Zero
	}
	return Property{
		ID:             uuid.NewString(),
		ListingID:      listingID,
		Name:           name,
		Category:       category,
		PurchasePrice:  price,
		CurrentValue:   price,
		DownPayment:    downPayment,
		LoanAmount:     loan,
		TermYears:      termYears,
		AnnualRate:     annualRate,
		MonthlyPayment: AmortizedPayment(loan, annualRate, termYears),
		AcquiredAt:     acquiredAt,
	}
}

// Equity is current value minus outstanding loan.
func (p Property) Equity() decimal.Decimal {
	return p.CurrentValue.Sub(p.LoanAmount)
}

// MonthsHeld returns whole months between acquisition and now, floored at
// zero to tolerate clock irregularities.
func (p Property) MonthsHeld(now time.Time) int {
	months := wholeMonths(p.AcquiredAt, now)
	if months < 0 {
		return 0
	}
	return months
}

func wholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// AmortizedPayment computes the standard fixed monthly mortgage payment:
// payment = L * i(1+i)^n / ((1+i)^n - 1), with i the monthly rate and n the
// number of monthly payments. A zero rate degrades to straight-line.
func AmortizedPayment(loan decimal.Decimal, annualRate float64, termYears int) decimal.Decimal {
	if loan.LessThanOrEqual(decimal.Zero) || termYears <= 0 {
		return decimal.Zero
	}
	n := float64(termYears * 12)
	if annualRate <= 0 {
		return loan.DivRound(decimal.NewFromFloat(n), 2)
	}
	i := annualRate / 12
	factor := math.Pow(1+i, n)
	ratio := i * factor / (factor - 1)
	return loan.Mul(decimal.NewFromFloat(ratio)).Round(2)
}
