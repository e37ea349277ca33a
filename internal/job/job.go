// Package job carries the employment record consumed by the daily and weekly
// ticks. Job-market generation lives outside the engine; this is a read-only
// input shape.
package job

// Job is the character's current employment.
type Job struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	AnnualSalary float64 `json:"annual_salary"`

	// Monthly attribute effects; the weekly tick applies a quarter of each.
	MonthlyHappiness float64 `json:"monthly_happiness"`
	MonthlyStress    float64 `json:"monthly_stress"`
	MonthlySkillGain float64 `json:"monthly_skill_gain"`

	// Hours per week the job consumes.
	TimeCommitment float64 `json:"time_commitment"`

	// Whole months held; incremented by the monthly tick.
	TenureMonths int `json:"tenure_months"`
}

// MonthlySalary is the gross monthly pay, used for tax computation.
func (j Job) MonthlySalary() float64 {
	return j.AnnualSalary / 12
}

// PaycheckAmount is the bi-weekly gross pay over the given number of pay
// periods per year.
func (j Job) PaycheckAmount(periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		periodsPerYear = 26
	}
	return j.AnnualSalary / float64(periodsPerYear)
}
