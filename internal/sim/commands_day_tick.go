package sim

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ssage19/Aspira-sub004/internal/character"
	"github.com/ssage19/Aspira-sub004/internal/expense"
	"github.com/ssage19/Aspira-sub004/internal/ledger"
	"github.com/ssage19/Aspira-sub004/internal/lifestyle"
	"github.com/ssage19/Aspira-sub004/internal/telemetry"
)

type DayTickResult struct {
	Day             string          `json:"day"`
	Skipped         bool            `json:"skipped"`
	ItemsExpired    int             `json:"items_expired"`
	SalaryPaid      decimal.Decimal `json:"salary_paid"`
	WeeklyApplied   bool            `json:"weekly_applied"`
	MonthlyClosed   bool            `json:"monthly_closed"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	Cash            decimal.Decimal `json:"cash"`
	NetWorth        decimal.Decimal `json:"net_worth"`
}

// AdvanceDay processes one simulated day. A day at or before the last
// processed day is skipped, so reprocessing the same date is a no-op. When
// the clock jumps by several days only the latest day's tick logic runs;
// intermediate days are not individually simulated.
//
// Within the day the order is fixed: lifestyle expiry resolves before needs
// decay, which resolves before income/expense accrual, so expiry reversal has
// settled before anything else reads attribute values.
func (e *Engine) AdvanceDay(ctx context.Context, characterID string, day time.Time) (DayTickResult, error) {
	c, err := e.load(ctx, characterID)
	if err != nil {
		return DayTickResult{}, err
	}

	day = dateOnly(day)
	res := DayTickResult{Day: day.Format("2006-01-02")}

	if !c.LastProcessedDay.IsZero() && !day.After(c.LastProcessedDay) {
		res.Skipped = true
		res.Cash = c.Ledger.Cash
		res.NetWorth = c.NetWorth
		return res, nil
	}

	monthRolled := !c.LastProcessedDay.IsZero() &&
		(c.LastProcessedDay.Month() != day.Month() || c.LastProcessedDay.Year() != day.Year())

	c.DaysElapsed++

	// (a) expire duration-bearing items, reversing their acquisition deltas
	res.ItemsExpired = e.expireItems(c, day)

	// (b) basic needs decay, with housing comfort modifier
	bal := e.Balance
	c.Needs.Hunger = character.Clamp(c.Needs.Hunger - bal.HungerDecayPerDay)
	c.Needs.Thirst = character.Clamp(c.Needs.Thirst - bal.ThirstDecayPerDay)
	c.Needs.Energy = character.Clamp(c.Needs.Energy - bal.EnergyDecayPerDay)
	c.Needs.Comfort = character.Clamp(c.Needs.Comfort + bal.HousingComfortPerDay[string(c.Housing)])

	// (c) health converges toward the weighted blend of needs and inverted
	// stress, moving at most MaxHealthDeltaPerDay per tick
	w := bal.HealthWeights
	target := c.Needs.Hunger*w.Hunger +
		c.Needs.Thirst*w.Thirst +
		c.Needs.Energy*w.Energy +
		c.Needs.Comfort*w.Comfort +
		(100-c.Attributes.Stress)*w.Stress
	delta := target - c.Attributes.Health
	if delta > bal.MaxHealthDeltaPerDay {
		delta = bal.MaxHealthDeltaPerDay
	} else if delta < -bal.MaxHealthDeltaPerDay {
		delta = -bal.MaxHealthDeltaPerDay
	}
	c.Attributes.AdjustHealth(delta)

	// (d) bi-weekly salary with a small variance
	if c.Job != nil && bal.PayPeriodDays > 0 && c.DaysElapsed%bal.PayPeriodDays == 0 {
		base := c.Job.PaycheckAmount(bal.PayPeriodsPerYear)
		variance := base * bal.SalaryVariancePct * (2*e.rng.Float64() - 1)
		pay := ledger.FromFloat(base + variance).Round(2)
		c.Ledger.Credit(pay)
		c.Ledger.RecordIncome(pay)
		res.SalaryPaid = pay
		e.emit(telemetry.EventSalaryPaid, telemetry.EventMetadata{
			"character": c.ID,
			"amount":    pay.InexactFloat64(),
		})
	}

	// (e) daily accrual of property income and lifestyle expenses
	daysPerMonth := int64(bal.AccrualDaysPerMonth)
	if daysPerMonth <= 0 {
		daysPerMonth = 30
	}
	dailyIncome := c.Portfolio.PropertyIncomeTotal().DivRound(decimal.NewFromInt(daysPerMonth), 2)
	if dailyIncome.IsPositive() {
		c.Ledger.Credit(dailyIncome)
		c.Ledger.RecordIncome(dailyIncome)
	}
	dailyUpkeep := lifestyle.MaintenanceTotal(c.Lifestyle).DivRound(decimal.NewFromInt(daysPerMonth), 2)
	if dailyUpkeep.IsPositive() {
		actual := c.Ledger.Debit(dailyUpkeep)
		c.Ledger.RecordExpense(actual)
	}

	// weekly: a quarter of the job's monthly attribute effects
	if c.Job != nil && c.DaysElapsed%7 == 0 {
		c.Attributes.AdjustHappiness(c.Job.MonthlyHappiness / 4)
		c.Attributes.AdjustStress(c.Job.MonthlyStress / 4)
		c.Attributes.AdjustPrestige(c.Job.MonthlySkillGain / 4)
		res.WeeklyApplied = true
	}

	// monthly close on calendar rollover
	if monthRolled {
		summary := expense.TotalMonthly(bal, c)
		actual := c.Ledger.Debit(summary.Total)
		c.Ledger.RecordExpense(actual)
		res.MonthlyClosed = true
		res.MonthlyExpenses = summary.Total

		// slow health drift from lifestyle quality
		c.Attributes.AdjustHealth((c.Attributes.Happiness - 50) / 50 * bal.HappinessHealthFactor)
		c.Attributes.AdjustHealth((c.Attributes.SocialConnections - 50) / 50 * bal.SocialHealthFactor)
		c.Attributes.AdjustHealth((c.Attributes.EnvironmentalImpact - 50) / 50 * bal.EnvironmentFactor)

		if c.Job != nil {
			c.Job.TenureMonths++
		}
		e.emit(telemetry.EventMonthlyClose, telemetry.EventMetadata{
			"character": c.ID,
			"expenses":  summary.Total.InexactFloat64(),
		})
	}

	c.LastProcessedDay = day

	b, err := e.commit(ctx, c)
	if err != nil {
		return DayTickResult{}, err
	}
	e.emit(telemetry.EventDayTick, telemetry.EventMetadata{
		"character":     c.ID,
		"day":           res.Day,
		"items_expired": res.ItemsExpired,
	})
	e.Log.WithFields(logrus.Fields{
		"character": c.ID,
		"day":       res.Day,
		"cash":      c.Ledger.Cash,
		"net_worth": b.Total,
	}).Info("day tick")

	res.Cash = c.Ledger.Cash
	res.NetWorth = b.Total
	return res, nil
}

// expireItems removes duration-bearing items whose end date has passed,
// reversing exactly the deltas applied at acquisition.
func (e *Engine) expireItems(c *character.Character, day time.Time) int {
	expired := 0
	for i := 0; i < len(c.Lifestyle); {
		item := c.Lifestyle[i]
		if !item.Expired(day) {
			i++
			continue
		}
		c.RemoveLifestyleItem(i)
		c.ApplyEffects(item.Effects, -1)
		expired++
		e.emit(telemetry.EventItemExpired, telemetry.EventMetadata{
			"character": c.ID,
			"item":      item.ID,
			"listing":   item.ListingID,
		})
	}
	return expired
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
